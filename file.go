package jsonkeep

import (
	"context"
	"os"
	"path/filepath"
)

// ReadFile reads and decodes the JSON document at path. When the root
// is tracked, the path is resolved to an absolute form and recorded so
// a later WriteFile can write back without an explicit location.
// Read and decode failures propagate unchanged.
func ReadFile(ctx context.Context, path string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	table.SetPath(v, abs)
	return v, nil
}

// WriteFile encodes v with its recorded formatting and writes the text
// to path. An empty path falls back to the location recorded by
// ReadFile; the explicit path takes precedence for this call only and
// does not rewrite the recorded one. ErrNoLocation is returned, before
// any I/O, when neither is available.
func WriteFile(ctx context.Context, v any, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		e, ok := table.Lookup(v)
		if !ok || e.Path == "" {
			return ErrNoLocation
		}
		path = e.Path
	}
	out, err := Encode(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
