// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
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
)

// Align is a table column alignment.
type Align int

// Alignments.
const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
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
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON format. URLs and non-ASCII names are written
// literally.
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
		yaml.Indent(2),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct{}

// Format outputs data in table format.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return f.formatTable(w, v)
	case *Data:
		return f.formatTable(w, *v)
	default:
		if tableData := toTableData(data); tableData != nil {
			return f.formatTable(w, *tableData)
		}
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}
}

func (f *TableFormatter) formatTable(w io.Writer, data Data) error {
	config := tablewriter.Config{}
	if len(data.ColumnAlignment) > 0 {
		align := make([]tw.Align, len(data.ColumnAlignment))
		for i, a := range data.ColumnAlignment {
			switch a {
			case AlignLeft:
				align[i] = tw.AlignLeft
			case AlignCenter:
				align[i] = tw.AlignCenter
			case AlignRight:
				align[i] = tw.AlignRight
			default:
				align[i] = tw.Skip
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}

	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}

// Data represents data formatted for table output.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", s)
	}
}

// toTableData converts a struct or a slice of structs using json tags as
// headers. Other values return nil.
func toTableData(data any) *Data {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	switch {
	case v.Kind() == reflect.Slice && v.Len() > 0 && v.Index(0).Kind() == reflect.Struct:
		t := v.Index(0).Type()
		out := &Data{}
		for i := 0; i < t.NumField(); i++ {
			out.Headers = append(out.Headers, headerName(t.Field(i)))
		}
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			row := make([]string, elem.NumField())
			for j := range row {
				row[j] = fmt.Sprintf("%v", elem.Field(j).Interface())
			}
			out.Rows = append(out.Rows, row)
		}
		return out

	case v.Kind() == reflect.Struct:
		t := v.Type()
		out := &Data{Headers: []string{"Property", "Value"}}
		for i := 0; i < t.NumField(); i++ {
			out.Rows = append(out.Rows, []string{
				headerName(t.Field(i)),
				fmt.Sprintf("%v", v.Field(i).Interface()),
			})
		}
		return out
	}
	return nil
}

func headerName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if idx := strings.Index(tag, ","); idx > 0 {
		tag = tag[:idx]
	}
	return cases.Title(language.English).String(strings.ReplaceAll(tag, "_", " "))
}
