// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	md "github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/aztfmod/cafmerge/pkg/constants"
	"github.com/aztfmod/cafmerge/pkg/errors"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatMarkdown represents a GitHub flavored markdown table.
	FormatMarkdown Format = "markdown"
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: constants.JSONIndent}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

// Data represents data formatted for table output.
type Data struct {
	Headers []string
	Rows    [][]string
}

// Tabular is implemented by values that can be shown as a table.
type Tabular interface {
	TableData() Data
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(constants.IndentWidth),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct{}

// Format outputs data in table format, falling back to JSON for values
// that have no table form.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	table, ok := tableData(data)
	if !ok {
		return (&JSONFormatter{Indent: constants.JSONIndent}).Format(w, data)
	}

	config := tablewriter.Config{}
	config.Header.Alignment = tw.CellAlignment{Global: tw.AlignLeft}
	config.Row.Alignment = tw.CellAlignment{Global: tw.AlignLeft}
	t := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	if len(table.Headers) > 0 {
		headers := make([]any, len(table.Headers))
		for i, h := range table.Headers {
			headers[i] = h
		}
		t.Header(headers...)
	}

	for _, row := range table.Rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := t.Append(rowData...); err != nil {
			return err
		}
	}

	return t.Render()
}

// MarkdownFormatter outputs a markdown table.
type MarkdownFormatter struct{}

// Format outputs data as a markdown table, falling back to JSON for values
// that have no table form.
func (f *MarkdownFormatter) Format(w io.Writer, data any) error {
	table, ok := tableData(data)
	if !ok {
		return (&JSONFormatter{Indent: constants.JSONIndent}).Format(w, data)
	}

	return md.NewMarkdown(w).
		Table(md.TableSet{
			Header: table.Headers,
			Rows:   table.Rows,
		}).
		Build()
}

func tableData(data any) (Data, bool) {
	switch v := data.(type) {
	case Data:
		return v, true
	case *Data:
		if v == nil {
			return Data{}, false
		}
		return *v, true
	case Tabular:
		return v.TableData(), true
	default:
		return Data{}, false
	}
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}

	// Default to JSON for pipes/redirects
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatMarkdown:
		return format, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", errors.NewValidationError("format", s, "must be one of table, json, yaml, markdown")
	}
}
