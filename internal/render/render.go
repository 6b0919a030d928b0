// Package render writes truth tables in the supported output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mfridman/boolalg"
)

// Format names an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats returns the accepted format names.
func Formats() []Format {
	return []Format{Text, JSON, YAML}
}

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case Text, JSON, YAML:
		return f, nil
	}
	names := make([]string, 0, len(Formats()))
	for _, known := range Formats() {
		names = append(names, string(known))
	}
	return "", fmt.Errorf("unknown format %q: must be one of %s", s, strings.Join(names, ", "))
}

type tableDoc struct {
	Operator string   `json:"operator" yaml:"operator"`
	Arity    int      `json:"arity" yaml:"arity"`
	Rows     []rowDoc `json:"rows" yaml:"rows"`
}

type rowDoc struct {
	A      int  `json:"a" yaml:"a"`
	B      *int `json:"b,omitempty" yaml:"b,omitempty"`
	Result int  `json:"result" yaml:"result"`
}

func bit(v bool) int {
	if v {
		return 1
	}
	return 0
}

func newTableDoc(t boolalg.Table) tableDoc {
	doc := tableDoc{
		Operator: t.Operator.Token(),
		Arity:    t.Operator.Arity(),
		Rows:     make([]rowDoc, 0, len(t.Rows)),
	}
	for _, r := range t.Rows {
		row := rowDoc{A: bit(r.A), Result: bit(r.Result)}
		if r.B != nil {
			b := bit(*r.B)
			row.B = &b
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc
}

// Table writes a single truth table.
func Table(w io.Writer, format Format, t boolalg.Table) error {
	switch format {
	case Text:
		return t.WriteText(w)
	case JSON, YAML:
		return encode(w, format, newTableDoc(t))
	}
	return fmt.Errorf("unsupported format %q", format)
}

// Tables writes several truth tables. In text format every table is followed by a blank line; the
// structured formats emit a single list document.
func Tables(w io.Writer, format Format, tables []boolalg.Table) error {
	switch format {
	case Text:
		for _, t := range tables {
			if err := t.WriteText(w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return nil
	case JSON, YAML:
		docs := make([]tableDoc, 0, len(tables))
		for _, t := range tables {
			docs = append(docs, newTableDoc(t))
		}
		return encode(w, format, docs)
	}
	return fmt.Errorf("unsupported format %q", format)
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}
