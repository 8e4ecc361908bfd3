package render

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/ldx/internal/adapters/detector"
	"go.trai.ch/ldx/internal/core/domain"
)

// Instances prints list2 rows.
func (r *Renderer) Instances(instances []domain.Instance) error {
	if r.mode == detector.ModeJSON {
		if instances == nil {
			instances = []domain.Instance{}
		}
		return r.writeJSON(instances)
	}

	g := grid{headers: []string{"INDEX", "NAME", "STATE", "PID", "RESOLUTION"}}
	for _, inst := range instances {
		pid := "-"
		if inst.PID > 0 {
			pid = strconv.Itoa(inst.PID)
		}
		res := "-"
		if inst.Width > 0 {
			res = fmt.Sprintf("%dx%d@%d", inst.Width, inst.Height, inst.DPI)
		}
		g.rows = append(g.rows, []string{strconv.Itoa(inst.Index), inst.Name, r.state(inst.Running()), pid, res})
	}
	return r.writeGrid(g)
}

// Result prints the shaped output of a single invocation.
func (r *Renderer) Result(res domain.Result) error {
	if r.mode == detector.ModeJSON {
		return r.writeJSON(res)
	}
	switch {
	case res.Instances != nil:
		return r.Instances(res.Instances)
	case res.Lines != nil:
		return r.writeLines(res.Lines...)
	case res.Text != "":
		return r.writeLines(res.Text)
	default:
		return r.writeLines(r.icon(true) + " " + res.Operation)
	}
}

// outcomeJSON is the JSON form of a batch outcome; errors become their message.
type outcomeJSON struct {
	Index  int            `json:"index"`
	Name   string         `json:"name"`
	OK     bool           `json:"ok"`
	Result *domain.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Outcomes prints one line per batch target followed by a summary.
func (r *Renderer) Outcomes(operation string, outcomes []domain.Outcome) error {
	if r.mode == detector.ModeJSON {
		out := make([]outcomeJSON, 0, len(outcomes))
		for _, o := range outcomes {
			j := outcomeJSON{Index: o.Instance.Index, Name: o.Instance.Name, OK: !o.Failed()}
			if o.Failed() {
				j.Error = o.Err.Error()
			} else if o.Result.Operation != "" {
				res := o.Result
				j.Result = &res
			}
			out = append(out, j)
		}
		return r.writeJSON(out)
	}

	lines := make([]string, 0, len(outcomes)+1)
	for _, o := range outcomes {
		line := r.icon(!o.Failed()) + " " + instanceLabel(o.Instance)
		switch {
		case o.Failed():
			line += ": " + o.Err.Error()
		case o.Result.Text != "":
			line += ": " + o.Result.Text
		case len(o.Result.Lines) > 0:
			line += ": " + strings.Join(o.Result.Lines, ", ")
		}
		lines = append(lines, line)
	}

	failed := domain.CountFailed(outcomes)
	summary := fmt.Sprintf("%s: %d succeeded, %d failed", operation, len(outcomes)-failed, failed)
	if len(outcomes) == 0 {
		summary = operation + ": no matching instances"
	}
	lines = append(lines, r.faint(summary))
	return r.writeLines(lines...)
}

func instanceLabel(inst domain.Instance) string {
	label := "#" + strconv.Itoa(inst.Index)
	if inst.Name != "" {
		label += " " + inst.Name
	}
	return label
}

// operationJSON is the JSON form of an operation table entry.
type operationJSON struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Targeting string   `json:"targeting"`
	Params    []string `json:"params,omitempty"`
	Result    string   `json:"result"`
	Batchable bool     `json:"batchable"`
}

// Operations prints the operation table.
func (r *Renderer) Operations(ops []domain.Operation) error {
	if r.mode == detector.ModeJSON {
		out := make([]operationJSON, 0, len(ops))
		for _, op := range ops {
			out = append(out, operationJSON{
				Name:      op.Name,
				Kind:      op.Kind.String(),
				Targeting: op.Targeting.String(),
				Params:    paramNames(op),
				Result:    op.Result.String(),
				Batchable: op.Batchable,
			})
		}
		return r.writeJSON(out)
	}

	g := grid{headers: []string{"OPERATION", "KIND", "TARGET", "PARAMS", "BATCH"}}
	for _, op := range ops {
		batch := ""
		if op.Batchable {
			batch = "yes"
		}
		params := strings.Join(paramNames(op), " ")
		if params == "" {
			params = "-"
		}
		g.rows = append(g.rows, []string{op.Name, op.Kind.String(), op.Targeting.String(), params, batch})
	}
	return r.writeGrid(g)
}

// paramNames lists parameters, marking optional ones with brackets.
func paramNames(op domain.Operation) []string {
	names := make([]string, 0, len(op.Params))
	for _, p := range op.Params {
		if p.Required {
			names = append(names, p.Name)
		} else {
			names = append(names, "["+p.Name+"]")
		}
	}
	return names
}

// Settings prints flat key/value pairs sorted by key.
func (r *Renderer) Settings(values map[string]any) error {
	if r.mode == detector.ModeJSON {
		return r.writeJSON(values)
	}
	g := grid{headers: []string{"KEY", "VALUE"}}
	for _, k := range slices.Sorted(maps.Keys(values)) {
		g.rows = append(g.rows, []string{k, formatValue(values[k])})
	}
	return r.writeGrid(g)
}

// Value prints a single setting.
func (r *Renderer) Value(key string, v any) error {
	if r.mode == detector.ModeJSON {
		return r.writeJSON(map[string]any{key: v})
	}
	return r.writeLines(formatValue(v))
}

// Names prints one name per line, or a JSON array.
func (r *Renderer) Names(names []string) error {
	if r.mode == detector.ModeJSON {
		if names == nil {
			names = []string{}
		}
		return r.writeJSON(names)
	}
	return r.writeLines(names...)
}

// Installations prints the registered roots with their registry index.
func (r *Renderer) Installations(roots []string) error {
	if r.mode == detector.ModeJSON {
		if roots == nil {
			roots = []string{}
		}
		return r.writeJSON(roots)
	}
	g := grid{headers: []string{"INDEX", "ROOT"}}
	for i, root := range roots {
		g.rows = append(g.rows, []string{strconv.Itoa(i), root})
	}
	return r.writeGrid(g)
}

// Keymap prints a summary of a keyboard mapping.
func (r *Renderer) Keymap(m *domain.KeyboardMapping) error {
	if r.mode == detector.ModeJSON {
		return r.writeJSON(m)
	}
	curves := 0
	for _, km := range m.Mappings {
		if km.IsCurve() {
			curves++
		}
	}
	res := m.ConfigInfo.ResolutionPattern
	return r.writeGrid(grid{
		headers: []string{"FIELD", "VALUE"},
		rows: [][]string{
			{"name", m.Name},
			{"package", orDash(m.ConfigInfo.PackageNamePattern)},
			{"resolution", fmt.Sprintf("%dx%d", res.Width, res.Height)},
			{"version", strconv.Itoa(m.ConfigInfo.Version)},
			{"priority", strconv.Itoa(m.ConfigInfo.Priority)},
			{"mappings", strconv.Itoa(len(m.Mappings))},
			{"curves", strconv.Itoa(curves)},
		},
	})
}

// Profile prints a mapping settings profile.
func (r *Renderer) Profile(p *domain.KeymapProfile) error {
	if r.mode == detector.ModeJSON {
		return r.writeJSON(p)
	}
	return r.writeGrid(grid{
		headers: []string{"FIELD", "VALUE"},
		rows: [][]string{
			{"name", p.Name},
			{"reduceInertia", strconv.FormatBool(p.ReduceInertia)},
			{"keyboardShowHints", strconv.FormatBool(p.KeyboardShowHints)},
			{"joystickShowHints", strconv.FormatBool(p.JoystickShowHints)},
			{"noticeTimes", strconv.Itoa(p.NoticeTimes)},
		},
	})
}

// Record prints a summary of a macro recording.
func (r *Renderer) Record(rec *domain.Record) error {
	if r.mode == detector.ModeJSON {
		return r.writeJSON(rec)
	}
	return r.writeGrid(grid{
		headers: []string{"FIELD", "VALUE"},
		rows: [][]string{
			{"name", rec.Name},
			{"title", orDash(rec.Info.RecordName)},
			{"created", orDash(rec.Info.CreateTime)},
			{"loopTimes", strconv.Itoa(rec.Info.LoopTimes)},
			{"operations", strconv.Itoa(len(rec.Operations))},
			{"durationMs", strconv.Itoa(rec.Duration())},
		},
	})
}

// Change prints the settings that changed in one file.
func (r *Renderer) Change(c domain.ConfigChange) error {
	if r.mode == detector.ModeJSON {
		r.mu.Lock()
		defer r.mu.Unlock()
		// One compact object per line so the stream can be piped.
		data, err := compactJSON(c)
		if err != nil {
			return err
		}
		return r.writeLocked(string(data) + "\n")
	}

	file := filepath.Base(c.Path)
	if c.Removed {
		return r.writeLines(r.icon(false) + " " + file + " removed")
	}
	lines := make([]string, 0, len(c.Changes))
	for _, ch := range c.Changes {
		lines = append(lines, fmt.Sprintf("%s %s: %s -> %s", r.faint(file), ch.Key, formatValue(ch.Old), formatValue(ch.New)))
	}
	return r.writeLines(lines...)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
