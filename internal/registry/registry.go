// Package registry maintains the side table from decoded value
// identities to their recorded formatting. The table keeps no
// reference to the values themselves, so tracking never extends a
// value's lifetime.
package registry

import (
	"errors"
	"reflect"
	"sync"

	"github.com/reoring/jsonkeep/internal/detect"
)

// Entry is the recorded state for one tracked value.
type Entry struct {
	Format detect.Format
	// Path is the absolute source location when the value was loaded
	// from a file; empty otherwise.
	Path string
}

// ErrUntrackable reports an attempt to associate formatting with a
// value that is not a non-nil object or array.
var ErrUntrackable = errors.New("registry: value is not a non-nil object or array")

// Table maps value identities to entries. Safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries map[uintptr]Entry
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[uintptr]Entry)}
}

// IdentityOf returns the backing-store address of a map or slice.
// Nil maps/slices and all other kinds have no identity here; primitive
// values are never tracked.
func IdentityOf(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}

// Trackable reports whether v is eligible for association.
func Trackable(v any) bool {
	_, ok := IdentityOf(v)
	return ok
}

// Associate records e for v's identity, overwriting any previous entry.
func (t *Table) Associate(v any, e Entry) error {
	id, ok := IdentityOf(v)
	if !ok {
		return ErrUntrackable
	}
	t.mu.Lock()
	t.entries[id] = e
	t.mu.Unlock()
	return nil
}

// Lookup returns the entry recorded for v, if any.
func (t *Table) Lookup(v any) (Entry, bool) {
	id, ok := IdentityOf(v)
	if !ok {
		return Entry{}, false
	}
	t.mu.RLock()
	e, ok := t.entries[id]
	t.mu.RUnlock()
	return e, ok
}

// Tracked reports whether an entry is recorded for v.
func (t *Table) Tracked(v any) bool {
	_, ok := t.Lookup(v)
	return ok
}

// SetPath records the source location on v's entry. It is a no-op for
// untracked values.
func (t *Table) SetPath(v any, path string) {
	id, ok := IdentityOf(v)
	if !ok {
		return
	}
	t.mu.Lock()
	if e, ok := t.entries[id]; ok {
		e.Path = path
		t.entries[id] = e
	}
	t.mu.Unlock()
}

// Forget removes v's entry, if any. Tracking is non-owning, so this is
// never required for correctness; it lets long-running callers drop
// entries for values they are done with.
func (t *Table) Forget(v any) {
	id, ok := IdentityOf(v)
	if !ok {
		return
	}
	t.mu.Lock()
	delete(t.entries, id)
	t.mu.Unlock()
}

// Len returns the number of recorded entries.
func (t *Table) Len() int {
	t.mu.RLock()
	n := len(t.entries)
	t.mu.RUnlock()
	return n
}
