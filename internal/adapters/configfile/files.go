// Package configfile reads and writes the JSON documents LDPlayer keeps under vms/.
package configfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/ldx/internal/core/ports"
	"go.trai.ch/zerr"
)

// utf8BOM is written by some LDPlayer builds in front of their JSON documents.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readDocument reads path and strips a leading byte order mark.
func readDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the installation root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

// loadJSON returns a loader that decodes the document at path into a fresh T.
func loadJSON[T any](decode func(data []byte, v *T) error) ports.Loader {
	return func(path string) (any, error) {
		data, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		v := new(T)
		if err := decode(data, v); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}
		return v, nil
	}
}

func unmarshal[T any](data []byte, v *T) error {
	return json.Unmarshal(data, v)
}

// get loads path through the cache and asserts the payload type.
func get[T any](cache ports.FileCache, path string, load ports.Loader) (*T, error) {
	v, err := cache.Get(path, load)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(*T)
	if !ok {
		// A different store type cached this path. Load it again as T.
		cache.Invalidate(path)
		v, err = cache.Get(path, load)
		if err != nil {
			return nil, err
		}
		if doc, ok = v.(*T); !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unexpected cached document"), "path", path)
		}
	}
	return doc, nil
}

// encode renders v with a 4-space indent and without HTML escaping.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, zerr.Wrap(domain.ErrConfigMarshalFailed, err.Error())
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// save writes v to path and refreshes the cache entry with payload.
func save(cache ports.FileCache, path string, v, payload any) error {
	data, err := encode(v)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}
	if err := cache.Put(path, payload); err != nil {
		cache.Invalidate(path)
	}
	return nil
}

// listNames returns the sorted base names, without ext, of the regular files in dir.
// A missing directory holds no files.
func listNames(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	slices.Sort(names)
	return names, nil
}

// withExt appends ext to name unless it is already there.
func withExt(name, ext string) string {
	if strings.EqualFold(filepath.Ext(name), ext) {
		return name
	}
	return name + ext
}
