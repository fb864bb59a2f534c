// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/staranto/license/internal/filters"
	"github.com/staranto/license/internal/resolver"
)

// Formats accepted by Spit.
var Formats = []string{"text", "json", "yaml"}

const errorColor = "#ff5f5f"

// Spit writes res to w. The text format is the bare license with no trailing
// newline so it can be redirected straight into a LICENSE file.
func Spit(w io.Writer, format string, res resolver.Resolution) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprint(w, res.Text)
		return err
	case "json":
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", format, Formats)
	}
}

// Lister is the part of the template store a kinds listing needs.
type Lister interface {
	Kinds() []string
	Title(kind string) string
	Size(kind string) int
}

// KindsTable renders the available kinds matching the filter spec, one per
// row.
func KindsTable(w io.Writer, l Lister, titles bool, spec string) error {
	candidates := make([]filters.Row, 0, len(l.Kinds()))
	for _, k := range l.Kinds() {
		candidates = append(candidates, filters.Row{"kind": k, "title": l.Title(k), "size": l.Size(k)})
	}

	matched, err := filters.Apply(candidates, spec)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(matched))
	for _, r := range matched {
		rows = append(rows, []string{
			r["kind"].(string),
			r["title"].(string),
			humanize.Bytes(uint64(r["size"].(int))),
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		Headers().
		Rows(rows...)

	if titles {
		t = t.Headers("KIND", "TITLE", "SIZE").BorderHeader(false)
	}

	fmt.Fprintln(w, t)
	return nil
}

// Error prints err prefixed with "Error:". The prefix is red when color is
// set.
func Error(w io.Writer, err error, color bool) {
	prefix := "Error:"
	if color {
		prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(errorColor)).Render(prefix)
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}

// ColorDefault is true when f is a terminal and NO_COLOR is not set.
func ColorDefault(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
