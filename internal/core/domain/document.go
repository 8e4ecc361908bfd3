package domain

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/zerr"
)

// Extra holds top-level members of a document that have no typed field, so they survive a save.
type Extra map[string]json.RawMessage

// decodeNested re-decodes a generic JSON value into a typed struct.
func decodeNested(in any, v any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return zerr.Wrap(err, "failed to encode settings")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return zerr.Wrap(ErrConfigParseFailed, "settings have unexpected types")
	}
	return nil
}

// splitExtra decodes data into v and returns the members whose names are not in known.
func splitExtra(data []byte, v any, known ...string) (Extra, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// joinExtra encodes v and merges the preserved members back in. Typed fields win on conflict.
func joinExtra(v any, extra Extra) ([]byte, error) {
	data, err := marshalRaw(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, raw := range extra {
		if _, ok := all[k]; !ok {
			all[k] = raw
		}
	}
	return marshalRaw(all)
}

// marshalRaw encodes v without HTML escaping, matching how LDPlayer writes its files.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
