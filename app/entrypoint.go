package app

import (
	"fmt"
	"io"

	"github.com/alonana/httfields/core"
	"github.com/alonana/httfields/har"
	"github.com/alonana/httfields/logentry"
	"github.com/alonana/httfields/render"
)

var openOutput = core.OpenOutput

type EntryPoint struct {
	// Out overrides the configured output, used by tests.
	Out io.Writer
}

func (p *EntryPoint) Run() (err error) {
	core.V1("Starting")

	out := p.Out
	if out == nil {
		var output io.WriteCloser
		output, err = openOutput(core.Config.OutputFile)
		if err != nil {
			return err
		}
		defer func() {
			closeErr := output.Close()
			if closeErr != nil && err == nil {
				err = fmt.Errorf("close output %v failed: %v", core.Config.OutputFile, closeErr)
			}
		}()
		out = output
	}

	if core.Config.Describe != "" {
		return p.describe(out, core.Config.Describe)
	}
	if core.Config.HarFile != "" {
		return p.renderHar(out)
	}
	return p.renderCatalog(out)
}

func (p *EntryPoint) describe(out io.Writer, name string) error {
	field, exists := logentry.ByQualifiedName(name)
	if !exists {
		return fmt.Errorf("unknown field %v, expected <group>.<field> such as Request.Method", name)
	}
	_, err := fmt.Fprintln(out, field.DescriptiveMessage())
	return err
}

func (p *EntryPoint) renderCatalog(out io.Writer) error {
	fields, err := render.ProduceGroupFields(core.Config.Group)
	if err != nil {
		return err
	}
	core.V1("rendering catalog of %v fields", len(fields))
	return render.Catalog(out, core.Config.Format, fields)
}

func (p *EntryPoint) renderHar(out io.Writer) error {
	columns, err := render.ProduceColumns(core.Config.Columns)
	if err != nil {
		return err
	}

	harData, err := har.Load(core.Config.HarFile)
	if err != nil {
		return err
	}

	entries := harData.Log.Entries
	records := make([]*logentry.Record, len(entries))
	jar := logentry.NewCookieJar()
	for i := 0; i < len(entries); i++ {
		entry := &entries[i]
		records[i] = logentry.NewRecord(i+1, core.Config.Tool, entry, jar)
		jar.Update(entry)
	}

	core.Info("%v entries loaded from %v", len(records), core.Config.HarFile)
	return render.Entries(out, core.Config.Format, columns, records)
}
