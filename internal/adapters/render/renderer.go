// Package render prints command results as tables, aligned plain text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/ldx/internal/adapters/detector"
	"go.trai.ch/ldx/internal/ui/output"
	"go.trai.ch/ldx/internal/ui/style"
)

// Renderer writes results to one writer in one mode. It is safe for concurrent use.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	mode   detector.OutputMode
	output *termenv.Output
}

// New creates a Renderer. ModeAuto is resolved against the environment.
func New(w io.Writer, mode detector.OutputMode) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	if mode == detector.ModeAuto {
		mode = detector.DetectEnvironment()
	}

	return &Renderer{
		w:      w,
		mode:   mode,
		output: output.New(w, mode == detector.ModeTable),
	}
}

// Mode returns the resolved output mode.
func (r *Renderer) Mode() detector.OutputMode {
	return r.mode
}

// grid is a header row plus data rows, printed as a table or as aligned columns.
type grid struct {
	headers []string
	rows    [][]string
}

func (r *Renderer) writeGrid(g grid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode == detector.ModeTable {
		return r.writeLocked(r.tableString(g) + "\n")
	}
	return r.writeLocked(plainString(g))
}

// tableString draws g with lipgloss borders and brand colors.
func (r *Renderer) tableString(g grid) string {
	renderer := lipgloss.NewRenderer(r.w)
	renderer.SetColorProfile(r.output.Profile)

	header := renderer.NewStyle().Bold(true).Foreground(style.Iris).Padding(0, 1)
	cell := renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(renderer.NewStyle().Foreground(style.Slate)).
		Headers(g.headers...).
		Rows(g.rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.String()
}

// plainString aligns the columns of g with two spaces between them. Widths count
// terminal cells, so wide characters in instance names line up.
func plainString(g grid) string {
	widths := make([]int, len(g.headers))
	measure := func(row []string) {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(c))
			}
		}
	}
	measure(g.headers)
	for _, row := range g.rows {
		measure(row)
	}

	var b strings.Builder
	line := func(row []string) {
		var sb strings.Builder
		for i, c := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(c)
			if i < len(widths) {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
			}
		}
		b.WriteString(strings.TrimRight(sb.String(), " "))
		b.WriteByte('\n')
	}
	line(g.headers)
	for _, row := range g.rows {
		line(row)
	}
	return b.String()
}

// writeJSON encodes v with a two-space indent.
func (r *Renderer) writeJSON(v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// writeLines prints each line followed by a newline.
func (r *Renderer) writeLines(lines ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return r.writeLocked(b.String())
}

func (r *Renderer) writeLocked(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

func (r *Renderer) icon(ok bool) string {
	if ok {
		return r.output.String(style.Check).Foreground(r.output.Color(string(style.Green))).String()
	}
	return r.output.String(style.Cross).Foreground(r.output.Color(string(style.Red))).String()
}

// state labels an instance, with a colored marker in table mode.
func (r *Renderer) state(running bool) string {
	label, icon, color := "stopped", style.Stopped, style.Slate
	if running {
		label, icon, color = "running", style.Running, style.Green
	}
	if r.mode != detector.ModeTable {
		return label
	}
	return r.output.String(icon).Foreground(r.output.Color(string(color))).String() + " " + label
}

func (r *Renderer) faint(s string) string {
	return r.output.String(s).Faint().String()
}

// formatValue renders a settings value the way it appears in the config file.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
