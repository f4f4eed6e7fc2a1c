package jsonkeep

import (
	"bytes"
	"encoding/json"
	"sync"

	gojson "github.com/goccy/go-json"
)

// Driver converts between JSON text and in-memory values via a
// pluggable SPI. The default implementation is backed by goccy/go-json
// and may be swapped with SetDriver.
type Driver interface {
	// Decode parses exactly one JSON document. Numeric literals must be
	// preserved textually (json.Number) so they round-trip unchanged.
	Decode(data []byte) (any, error)
	// Encode serializes v, indented by indent when non-empty, without a
	// trailing newline. HTML characters are not escaped.
	Encode(v any, indent string) ([]byte, error)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = goccyDriver{}
)

// SetDriver replaces the global codec driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default go-json-backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = goccyDriver{}
	driverMu.Unlock()
}

// StdDriver returns a Driver backed by encoding/json.
func StdDriver() Driver { return stdDriver{} }

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// goccyDriver wraps the goccy/go-json implementation.
type goccyDriver struct{}

func (goccyDriver) Decode(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return v, nil
}

func (goccyDriver) Encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := gojson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return trimStreamNewline(buf.Bytes()), nil
}

func (goccyDriver) Name() string { return "go-json" }

// stdDriver wraps the encoding/json implementation.
type stdDriver struct{}

func (stdDriver) Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return v, nil
}

func (stdDriver) Encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return trimStreamNewline(buf.Bytes()), nil
}

func (stdDriver) Name() string { return "encoding/json" }

// trimStreamNewline drops the newline Encoder appends as a stream
// separator; trailing-newline replay belongs to the caller.
func trimStreamNewline(b []byte) []byte {
	return bytes.TrimSuffix(b, []byte("\n"))
}
