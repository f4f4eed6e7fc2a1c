package jsonkeep

import "errors"

// ErrNoLocation indicates WriteFile was called with neither an explicit
// path nor one recorded by a prior ReadFile. It is returned before any
// I/O is attempted.
var ErrNoLocation = errors.New("jsonkeep: no location available")

// ErrTrailingData indicates the input contained additional non-space
// data after the top-level JSON value. Decode is strict: one document
// per input.
var ErrTrailingData = errors.New("jsonkeep: unexpected data after top-level value")
