package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Settings is an LDPlayer config document. Keys are mostly dotted paths such as
// "basicSettings.width"; some values are nested objects. Numbers are held as json.Number
// so a load and save cycle keeps them exactly as written.
type Settings map[string]any

// DecodeSettings parses a JSON object into Settings.
func DecodeSettings(data []byte) (Settings, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var s Settings
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, zerr.New("unexpected data after settings document")
	}
	if s == nil {
		s = Settings{}
	}
	return s, nil
}

// Get resolves a dotted key. Exact keys win; otherwise the key is split on dots and
// resolved through nested objects.
func (s Settings) Get(key string) (any, bool) {
	return lookup(s, strings.Split(key, "."))
}

func lookup(m map[string]any, parts []string) (any, bool) {
	for i := len(parts); i > 0; i-- {
		v, ok := m[strings.Join(parts[:i], ".")]
		if !ok {
			continue
		}
		if i == len(parts) {
			return v, true
		}
		if sub, isMap := v.(map[string]any); isMap {
			if found, ok := lookup(sub, parts[i:]); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Set writes value at the existing location of key, or as a new flat dotted key.
func (s Settings) Set(key string, value any) {
	if !assign(s, strings.Split(key, "."), value) {
		s[key] = value
	}
}

func assign(m map[string]any, parts []string, value any) bool {
	for i := len(parts); i > 0; i-- {
		k := strings.Join(parts[:i], ".")
		v, ok := m[k]
		if !ok {
			continue
		}
		if i == len(parts) {
			m[k] = value
			return true
		}
		if sub, isMap := v.(map[string]any); isMap && assign(sub, parts[i:], value) {
			return true
		}
	}
	return false
}

// Keys returns the top-level keys in lexical order.
func (s Settings) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Flatten returns every leaf value keyed by its full dotted path.
func (s Settings) Flatten() map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", s)
	return out
}

func flattenInto(out map[string]any, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok && len(sub) > 0 {
			flattenInto(out, key, sub)
			continue
		}
		out[key] = v
	}
}

// Nested rebuilds the document as nested objects, so "basicSettings.width" becomes
// {"basicSettings": {"width": ...}}.
func (s Settings) Nested() map[string]any {
	out := make(map[string]any)
	for key, v := range s.Flatten() {
		parts := strings.Split(key, ".")
		cur := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := cur[p].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cur[p] = next
			}
			cur = next
		}
		cur[parts[len(parts)-1]] = v
	}
	return out
}

// Section returns the nested object under name, or nil when absent.
func (s Settings) Section(name string) map[string]any {
	sub, _ := s.Nested()[name].(map[string]any)
	return sub
}

// DecodeSection decodes the nested object under name into v.
func (s Settings) DecodeSection(name string, v any) error {
	data, err := json.Marshal(s.Section(name))
	if err != nil {
		return zerr.Wrap(err, "failed to encode settings section")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(ErrConfigParseFailed, "settings section has unexpected types"), "section", name)
	}
	return nil
}

// Clone returns a deep copy of the document.
func (s Settings) Clone() Settings {
	return cloneMap(s)
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch tv := v.(type) {
		case map[string]any:
			out[k] = cloneMap(tv)
		case []any:
			out[k] = slices.Clone(tv)
		default:
			out[k] = v
		}
	}
	return out
}

// ParseAssignment splits "key=value" and decodes value as JSON when possible.
// Values that are not valid JSON are kept as strings, so name=LDPlayer needs no quoting.
func ParseAssignment(raw string) (string, any, error) {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, zerr.With(zerr.Wrap(ErrInvalidSetting, "cannot parse setting"), "assignment", raw)
	}
	return key, ParseValue(value), nil
}

// ParseValue decodes raw as a JSON scalar or object, falling back to the raw string.
func ParseValue(raw string) any {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return raw
	}
	return v
}

// SettingChange is one key whose value differs between two snapshots.
type SettingChange struct {
	Key string `json:"key"`
	Old any    `json:"old"`
	New any    `json:"new"`
}

// Diff compares the leaf values of two documents and returns the changes sorted by key.
// Missing keys are reported with a nil value on the missing side.
func Diff(before, after Settings) []SettingChange {
	a, b := before.Flatten(), after.Flatten()
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}

	var changes []SettingChange
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		oldV, newV := a[k], b[k]
		if jsonEqual(oldV, newV) {
			continue
		}
		changes = append(changes, SettingChange{Key: k, Old: oldV, New: newV})
	}
	return changes
}

func jsonEqual(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ja, jb)
}

// ConfigChange reports the settings that changed in one config file.
type ConfigChange struct {
	Path    string          `json:"path"`
	Index   int             `json:"index"`
	Global  bool            `json:"global"`
	Removed bool            `json:"removed,omitempty"`
	Changes []SettingChange `json:"changes,omitempty"`
}
