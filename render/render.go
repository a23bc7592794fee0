package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alonana/httfields/logentry"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatYAML  = "yaml"
)

type catalogEntry struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
}

func FormatValue(v interface{}, exists bool) string {
	if !exists || v == nil {
		return ""
	}
	switch typed := v.(type) {
	case string:
		return typed
	case int:
		return strconv.Itoa(typed)
	case bool:
		return strconv.FormatBool(typed)
	case time.Time:
		return typed.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%v", v)
}

// Entries writes one row per record with a column per field.
func Entries(w io.Writer, format string, columns []logentry.Field, records []*logentry.Record) error {
	headers := make([]string, len(columns))
	for i := 0; i < len(columns); i++ {
		headers[i] = columns[i].FullLabel()
	}

	rows := make([][]string, len(records))
	for i := 0; i < len(records); i++ {
		row := make([]string, len(columns))
		for j := 0; j < len(columns); j++ {
			row[j] = FormatValue(records[i].Value(columns[j]))
		}
		rows[i] = row
	}

	switch format {
	case FormatTable:
		return writeTable(w, headers, rows)
	case FormatCSV:
		return writeCSV(w, headers, rows)
	}
	return fmt.Errorf("format %v is not supported for entries", format)
}

// Catalog writes the metadata of the fields.
func Catalog(w io.Writer, format string, fields []logentry.Field) error {
	entries := make([]catalogEntry, len(fields))
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		entries[i] = catalogEntry{
			Name:        field.FullLabel(),
			Aliases:     field.Labels(),
			Type:        field.Type().String(),
			Description: field.Description(),
		}
	}

	if format == FormatYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		err := encoder.Encode(entries)
		if err != nil {
			return fmt.Errorf("encode catalog failed: %v", err)
		}
		return encoder.Close()
	}

	headers := []string{"Field", "Aliases", "Type", "Description"}
	rows := make([][]string, len(entries))
	for i := 0; i < len(entries); i++ {
		e := entries[i]
		rows[i] = []string{e.Name, strings.Join(e.Aliases, ", "), e.Type, e.Description}
	}

	switch format {
	case FormatTable:
		return writeTable(w, headers, rows)
	case FormatCSV:
		return writeCSV(w, headers, rows)
	}
	return fmt.Errorf("format %v is not supported for the catalog", format)
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	if err != nil {
		return fmt.Errorf("write table failed: %v", err)
	}
	return nil
}

func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	err := writer.Write(headers)
	if err != nil {
		return fmt.Errorf("write csv header failed: %v", err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("write csv rows failed: %v", err)
	}
	return nil
}
