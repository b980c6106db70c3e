// Package render writes command results as plain text or JSON.
// Text keys are highlighted only when writing to a terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Row is one line of text output. Rows without a key print the value alone.
type Row struct {
	Key   string
	Value string
}

// Printer renders results to a writer.
type Printer struct {
	w      io.Writer
	json   bool
	styled bool
	key    lipgloss.Style
}

// New creates a Printer. Styling is applied when color is set and w is a terminal.
func New(w io.Writer, jsonOut, color bool) *Printer {
	return &Printer{
		w:      w,
		json:   jsonOut,
		styled: color && isTerminal(w),
		key:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Emit writes v as indented JSON in JSON mode, otherwise writes rows.
func (p *Printer) Emit(v any, rows ...Row) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	for _, r := range rows {
		var err error
		if r.Key == "" {
			_, err = fmt.Fprintln(p.w, r.Value)
		} else {
			_, err = fmt.Fprintf(p.w, "%s: %s\n", p.styleKey(r.Key), r.Value)
		}
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

func (p *Printer) styleKey(k string) string {
	if !p.styled {
		return k
	}
	return p.key.Render(k)
}
