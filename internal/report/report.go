package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func (f Format) Validate() error {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("format '%s': %w", f, ErrUnknownFormat)
	}
}

// Writer renders catalog data to out in one of the supported formats.
type Writer struct {
	out    io.Writer
	format Format
}

func New(out io.Writer, format Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	return &Writer{out: out, format: format}, nil
}

func (w *Writer) Format() Format {
	return w.format
}

// encode writes v as indented JSON or YAML.
func (w *Writer) encode(v any) error {
	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func (w *Writer) table(header []string, data [][]string) {
	table := tablewriter.NewWriter(w.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}

// cell renders a record value for table output.
func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// scalar converts json.Number into int64 or float64 so that YAML output
// keeps numbers unquoted.
func scalar(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
