// Package render writes pizzas and the variant menu in the output formats
// supported by the command-line tool.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pizza/builder"
)

// Format selects how pizzas are written.
type Format string

const (
	// FormatText writes "<label> <Pizza.String()>" per pizza.
	FormatText Format = "text"
	// FormatTable writes a go-pretty table.
	FormatTable Format = "table"
	// FormatJSON writes indented JSON.
	FormatJSON Format = "json"
	// FormatYAML writes YAML documents.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates an output format outside the supported set.
var ErrUnknownFormat = errors.New("render: unknown format")

var formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// Formats returns the supported formats in display order.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat converts text into a Format, ignoring case. Empty text selects
// FormatText.
func ParseFormat(text string) (Format, error) {
	if text == "" {
		return FormatText, nil
	}
	for _, f := range formats {
		if strings.EqualFold(string(f), text) {
			return f, nil
		}
	}

	return "", fmt.Errorf("%q: %w", text, ErrUnknownFormat)
}

// Entry is one labelled pizza, e.g. a menu line or a demo result.
type Entry struct {
	Label string        `json:"label" yaml:"label"`
	Pizza builder.Pizza `json:"pizza" yaml:"pizza"`
}

// Renderer writes entries in a fixed Format.
type Renderer struct {
	Format Format
}

// New returns a Renderer for format.
func New(format Format) *Renderer {
	return &Renderer{Format: format}
}

// Pizza writes a single labelled pizza.
func (r *Renderer) Pizza(w io.Writer, label string, p builder.Pizza) error {
	return r.Entries(w, []Entry{{Label: label, Pizza: p}})
}

// Entries writes every entry in order.
func (r *Renderer) Entries(w io.Writer, entries []Entry) error {
	switch r.Format {
	case FormatText, "":
		return renderText(w, entries)
	case FormatTable:
		return renderTable(w, entries)
	case FormatJSON:
		return renderJSON(w, entries)
	case FormatYAML:
		return renderYAML(w, entries)
	default:
		return fmt.Errorf("%q: %w", r.Format, ErrUnknownFormat)
	}
}

func renderText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		line := e.Pizza.String()
		if e.Label != "" {
			line = e.Label + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func renderTable(w io.Writer, entries []Entry) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Pizza", "Size", "Shape", "Toppings"})

	for _, e := range entries {
		names := make([]string, len(e.Pizza.Toppings))
		for i, tp := range e.Pizza.Toppings {
			names[i] = string(tp)
		}
		t.AppendRow(table.Row{e.Label, e.Pizza.Size, e.Pizza.Shape, strings.Join(names, ", ")})
	}

	t.Render()

	return nil
}

func renderJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}

func renderYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}

	return enc.Close()
}
