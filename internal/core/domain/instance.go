package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// list2Fields is the minimum number of comma-separated fields in a list2 row.
const list2Fields = 7

// Instance is one emulator instance as reported by ldconsole list2.
type Instance struct {
	Index            int    `json:"index"`
	Name             string `json:"name"`
	TopWindowHandle  int64  `json:"top_window_handle"`
	BindWindowHandle int64  `json:"bind_window_handle"`
	AndroidStarted   bool   `json:"android_started"`
	PID              int    `json:"pid"`
	VBoxPID          int    `json:"vbox_pid"`
	Width            int    `json:"width,omitempty"`
	Height           int    `json:"height,omitempty"`
	DPI              int    `json:"dpi,omitempty"`
}

// Running reports whether Android has finished booting inside the instance.
func (i Instance) Running() bool {
	return i.AndroidStarted
}

// ParseInstances decodes list2 output, one instance per non-empty line.
func ParseInstances(output string) ([]Instance, error) {
	var instances []Instance
	for line := range strings.Lines(output) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		inst, err := ParseInstance(line)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

// ParseInstance decodes a single list2 row.
func ParseInstance(line string) (Instance, error) {
	fields := strings.Split(line, ",")
	if len(fields) < list2Fields {
		err := zerr.Wrap(ErrDecodeFailed, "malformed delimiter count")
		err = zerr.With(err, "line", line)
		return Instance{}, zerr.With(err, "fields", len(fields))
	}

	var inst Instance
	p := fieldParser{line: line}
	inst.Index = p.int(fields[0], "index")
	inst.Name = fields[1]
	inst.TopWindowHandle = p.int64(fields[2], "top_window_handle")
	inst.BindWindowHandle = p.int64(fields[3], "bind_window_handle")
	inst.AndroidStarted = p.int(fields[4], "android_started") != 0
	inst.PID = p.int(fields[5], "pid")
	inst.VBoxPID = p.int(fields[6], "vbox_pid")
	if len(fields) >= list2Fields+3 {
		inst.Width = p.int(fields[7], "width")
		inst.Height = p.int(fields[8], "height")
		inst.DPI = p.int(fields[9], "dpi")
	}
	if p.err != nil {
		return Instance{}, p.err
	}
	return inst, nil
}

// fieldParser records the first numeric conversion failure of a row.
type fieldParser struct {
	line string
	err  error
}

func (p *fieldParser) int64(raw, field string) int64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		e := zerr.Wrap(ErrDecodeFailed, "non-numeric field")
		e = zerr.With(e, "field", field)
		e = zerr.With(e, "value", raw)
		p.err = zerr.With(e, "line", p.line)
		return 0
	}
	return v
}

func (p *fieldParser) int(raw, field string) int {
	return int(p.int64(raw, field))
}

// Target selects one instance by name or by index.
type Target struct {
	Name  string
	Index *int
}

// ByIndex selects the instance at index.
func ByIndex(index int) Target {
	return Target{Index: &index}
}

// ByName selects the instance called name.
func ByName(name string) Target {
	return Target{Name: name}
}

// IsZero reports whether no instance is selected.
func (t Target) IsZero() bool {
	return t.Name == "" && t.Index == nil
}

// Ambiguous reports whether both a name and an index are set.
func (t Target) Ambiguous() bool {
	return t.Name != "" && t.Index != nil
}

// Matches reports whether the target selects inst.
func (t Target) Matches(inst Instance) bool {
	if t.Index != nil {
		return *t.Index == inst.Index
	}
	return t.Name != "" && t.Name == inst.Name
}

// String renders the target the way it is passed to ldconsole.
func (t Target) String() string {
	switch {
	case t.Index != nil:
		return "#" + strconv.Itoa(*t.Index)
	case t.Name != "":
		return t.Name
	default:
		return "<none>"
	}
}

// ParseTarget interprets a bare integer as an index and anything else as a name.
func ParseTarget(raw string) Target {
	if idx, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && idx >= 0 {
		return ByIndex(idx)
	}
	return ByName(raw)
}
