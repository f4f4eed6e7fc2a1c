package jsonkeep

import (
	"bytes"
	"io"

	"github.com/reoring/jsonkeep/internal/detect"
	"github.com/reoring/jsonkeep/internal/registry"
)

// table is the process-wide association from decoded value identities
// to their formatting. Entries hold no reference to the values.
var table = registry.New()

// Decode parses one strict JSON document and returns its value. When
// the root is a non-nil object or array, the formatting of data is
// inferred and recorded for the returned value, to be replayed by
// Encode. Primitive roots are returned as-is; they carry no formatting
// worth replaying. Decode failures propagate from the codec driver
// unchanged.
func Decode(data []byte) (any, error) {
	v, err := getDriver().Decode(data)
	if err != nil {
		return nil, err
	}
	if !registry.Trackable(v) {
		return v, nil
	}
	v = reback(v)
	_ = table.Associate(v, registry.Entry{Format: detect.Scan(data)})
	return v, nil
}

// DecodeReader reads r to completion and decodes it as one document.
func DecodeReader(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Encode serializes v, replaying the indentation unit, line-ending
// style, and trailing newline recorded when v was decoded. A value
// that never passed through Decode gets the defaults: compact output,
// LF, no trailing newline.
func Encode(v any) ([]byte, error) {
	return encode(v, nil)
}

// EncodeIndent is Encode with the indentation unit forced to indent
// (empty means compact). Line-ending and trailing-newline replay are
// unaffected by the override.
func EncodeIndent(v any, indent string) ([]byte, error) {
	return encode(v, &indent)
}

func encode(v any, indentOverride *string) ([]byte, error) {
	e, _ := table.Lookup(v)
	indent := e.Format.Indent
	if indentOverride != nil {
		indent = *indentOverride
	}
	out, err := getDriver().Encode(v, indent)
	if err != nil {
		return nil, err
	}
	if e.Format.TrailingNewline {
		out = append(out, '\n')
	}
	if e.Format.CRLF {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}
	return out, nil
}

// IsTracked reports whether formatting has been recorded for v.
func IsTracked(v any) bool {
	return table.Tracked(v)
}

// DescriptorOf returns a copy of the formatting recorded for v, or
// false when v was never tracked.
func DescriptorOf(v any) (Descriptor, bool) {
	e, ok := table.Lookup(v)
	if !ok {
		return Descriptor{}, false
	}
	return Descriptor{
		Indent:          e.Format.Indent,
		CRLF:            e.Format.CRLF,
		TrailingNewline: e.Format.TrailingNewline,
		Path:            e.Path,
	}, true
}

// Forget drops the formatting recorded for v. Tracking never pins a
// value, so Forget is optional; it exists for long-running processes
// that decode many documents and want the side table pruned eagerly.
func Forget(v any) {
	table.Forget(v)
}

// reback gives zero-capacity empty array roots their own backing
// allocation. Zero-capacity slices share the runtime's zero-size
// allocation, which would give every decoded "[]" the same identity.
func reback(v any) any {
	if s, ok := v.([]any); ok && cap(s) == 0 {
		return make([]any, 0, 1)
	}
	return v
}
