// Package register implements the insertion-ordered keyed collection that
// backs every domain register.
package register

import (
	"iter"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/pantrypal/internal/errs"
)

// Keyed is anything with a stable identity key.
type Keyed interface {
	Key() string
}

// ErrorFactory builds the errors a register reports. Both funcs receive the
// offending key. Produced errors should wrap errs.ErrNotFound and
// errs.ErrDuplicateKey respectively.
type ErrorFactory struct {
	NotFound  func(key string) error
	Duplicate func(key string) error
}

// DefaultErrors is used when a register is built without its own factory.
var DefaultErrors = ErrorFactory{
	NotFound:  func(key string) error { return errs.NotFound("%q does not exist in register", key) },
	Duplicate: func(key string) error { return errs.Duplicate("%q already exists in register", key) },
}

// Register is an insertion-ordered map from key to entity. The zero value is
// not usable; call New.
type Register[T Keyed] struct {
	keys   []string
	items  map[string]T
	errors ErrorFactory
}

// New returns an empty register reporting errors through f. Missing funcs in
// f fall back to DefaultErrors.
func New[T Keyed](f ErrorFactory) *Register[T] {
	if f.NotFound == nil {
		f.NotFound = DefaultErrors.NotFound
	}
	if f.Duplicate == nil {
		f.Duplicate = DefaultErrors.Duplicate
	}
	return &Register[T]{items: make(map[string]T), errors: f}
}

// Clone returns a register holding the same entities in the same order.
// Entities themselves are shared, not copied.
func (r *Register[T]) Clone() *Register[T] {
	c := &Register[T]{
		keys:   slices.Clone(r.keys),
		items:  make(map[string]T, len(r.items)),
		errors: r.errors,
	}
	for k, v := range r.items {
		c.items[k] = v
	}
	return c
}

func (r *Register[T]) Len() int { return len(r.keys) }

func (r *Register[T]) Contains(key string) bool {
	_, ok := r.items[key]
	return ok
}

// Get returns the entity stored under key.
func (r *Register[T]) Get(key string) (T, error) {
	v, ok := r.items[key]
	if !ok {
		var zero T
		return zero, r.errors.NotFound(key)
	}
	return v, nil
}

// Add inserts e under e.Key(). The register is left unchanged on error.
func (r *Register[T]) Add(e T) error {
	key := e.Key()
	if _, ok := r.items[key]; ok {
		return r.errors.Duplicate(key)
	}
	r.items[key] = e
	r.keys = append(r.keys, key)
	return nil
}

// Remove deletes the entity stored under e.Key().
func (r *Register[T]) Remove(e T) error {
	return r.RemoveKey(e.Key())
}

func (r *Register[T]) RemoveKey(key string) error {
	if _, ok := r.items[key]; !ok {
		return r.errors.NotFound(key)
	}
	delete(r.items, key)
	if i := slices.Index(r.keys, key); i >= 0 {
		r.keys = slices.Delete(r.keys, i, i+1)
	}
	return nil
}

// Replace swaps the entity stored under e.Key() for e, keeping its position.
func (r *Register[T]) Replace(e T) error {
	key := e.Key()
	if _, ok := r.items[key]; !ok {
		return r.errors.NotFound(key)
	}
	r.items[key] = e
	return nil
}

// Clear drops every entity.
func (r *Register[T]) Clear() {
	r.keys = nil
	r.items = make(map[string]T)
}

// Keys returns the keys in insertion order.
func (r *Register[T]) Keys() []string { return slices.Clone(r.keys) }

// Values returns the entities in insertion order.
func (r *Register[T]) Values() []T {
	out := make([]T, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.items[k])
	}
	return out
}

// All iterates over the entities in insertion order.
func (r *Register[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, k := range r.keys {
			if !yield(r.items[k]) {
				return
			}
		}
	}
}

// Search yields every entity whose key contains sub, ignoring case, in
// register order. An empty sub matches everything. The key set is captured
// when Search is called; entities removed afterwards are skipped.
func (r *Register[T]) Search(sub string) iter.Seq[T] {
	needle := strings.ToLower(sub)
	keys := slices.Clone(r.keys)
	return func(yield func(T) bool) {
		for _, k := range keys {
			if !strings.Contains(strings.ToLower(k), needle) {
				continue
			}
			v, ok := r.items[k]
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Suggest returns the existing key closest to key by edit distance. It
// reports false for an empty register or when nothing is within half the
// length of key.
func (r *Register[T]) Suggest(key string) (string, bool) {
	best, bestDist := "", -1
	needle := strings.ToLower(key)
	for _, k := range r.keys {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(k))
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > (len(key)+1)/2 {
		return "", false
	}
	return best, true
}
