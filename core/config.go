package core

import (
	"encoding/json"
	"fmt"

	"github.com/namsral/flag"
	"github.com/sirupsen/logrus"
)

type Configuration = struct {
	Verbose    int
	LogLevel   string
	HarFile    string
	Columns    string
	Group      string
	Describe   string
	Format     string
	OutputFile string
	Tool       string
}

var Config Configuration

var formats = map[string]bool{
	"table": true,
	"csv":   true,
	"yaml":  true,
}

func ParseFlags() {
	flag.String(flag.DefaultConfigFlagname, "", "path to a config file")
	flag.IntVar(&Config.Verbose, "verbose", 0, "print verbose information 0=nothing 5=all")
	flag.StringVar(&Config.LogLevel, "log-level", "info", "log level: panic, fatal, error, warn, info, debug, trace")
	flag.StringVar(&Config.HarFile, "har", "", "HAR file to render, plain or gzip compressed")
	flag.StringVar(&Config.Columns, "columns", "", "comma separated list of qualified field names to render, e.g. Request.Method,Response.Status. Empty list for all fields")
	flag.StringVar(&Config.Group, "group", "", "restrict the field catalog to this group")
	flag.StringVar(&Config.Describe, "describe", "", "describe a single field by its qualified name")
	flag.StringVar(&Config.Format, "format", "table", "output format: table, csv, yaml")
	flag.StringVar(&Config.OutputFile, "output-file", "", "write the output to this file instead of stdout")
	flag.StringVar(&Config.Tool, "tool", "Proxy", "tool name reported for the rendered entries")

	flag.Parse()
	InitLogger()

	marshal, err := json.Marshal(Config)
	if err != nil {
		Fatal("marshal config failed: %v", err)
	}

	V5("V5 mode activated")
	V5("common configuration loaded: %v", string(marshal))

	err = Validate(&Config)
	if err != nil {
		Fatal("invalid configuration: %v", err)
	}
}

func Validate(c *Configuration) error {
	if !formats[c.Format] {
		return fmt.Errorf("unknown format %v", c.Format)
	}
	_, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	if c.Columns != "" && c.HarFile == "" {
		return fmt.Errorf("columns argument requires the har argument")
	}
	if c.HarFile != "" && c.Format == "yaml" {
		return fmt.Errorf("yaml format is supported only for the field catalog")
	}
	return nil
}
