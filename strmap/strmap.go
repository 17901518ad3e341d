// Package strmap implements hash maps and sets keyed by hstr.Str
// that use each key's precomputed hash instead of rehashing its content.
package strmap

import (
	"iter"

	"github.com/cockroachdb/swiss"

	"github.com/bobg/hstr"
)

// Map is a hash map from Strs to values of type V.
// Keys compare by hash and content,
// so Strs from different Caches with equal content are the same key.
//
// A Map is not safe for concurrent use.
type Map[V any] struct {
	m *swiss.Map[hstr.Str, entry[V]]
}

type entry[V any] struct {
	key *hstr.Str
	val V
}

// New produces a Map that uses the PassThrough hasher.
func New[V any](capacity int) *Map[V] {
	return NewWithHasher[V](capacity, PassThrough{})
}

// NewSalted produces a Map with its own randomly salted hasher.
func NewSalted[V any](capacity int) *Map[V] {
	return NewWithHasher[V](capacity, NewSalted())
}

// NewWithHasher produces a Map that uses the given Hasher.
func NewWithHasher[V any](capacity int, h Hasher) *Map[V] {
	return &Map[V]{
		m: swiss.New[hstr.Str, entry[V]](capacity, swiss.WithHash[hstr.Str, entry[V]](hashFunc(h))),
	}
}

// Get gets the value for k.
func (m *Map[V]) Get(k *hstr.Str) (V, bool) {
	e, ok := m.m.Get(*k)
	return e.val, ok
}

// GetUnhashed gets the value for the key with content u,
// hashing u on the fly.
// It does not allocate.
func (m *Map[V]) GetUnhashed(u hstr.Unhashed) (V, bool) {
	e, ok := m.m.Get(u.Key())
	return e.val, ok
}

// Put sets the value for k.
// If an equal key is already present it keeps its original *Str.
func (m *Map[V]) Put(k *hstr.Str, v V) {
	if e, ok := m.m.Get(*k); ok {
		k = e.key
	}
	m.m.Put(*k, entry[V]{key: k, val: v})
}

// Delete removes k.
func (m *Map[V]) Delete(k *hstr.Str) {
	m.m.Delete(*k)
}

// Len is the number of keys in m.
func (m *Map[V]) Len() int {
	return m.m.Len()
}

// Clear removes every key.
func (m *Map[V]) Clear() {
	m.m.Clear()
}

// All produces the keys and values of m in no particular order.
func (m *Map[V]) All() iter.Seq2[*hstr.Str, V] {
	return func(yield func(*hstr.Str, V) bool) {
		m.m.All(func(_ hstr.Str, e entry[V]) bool {
			return yield(e.key, e.val)
		})
	}
}

// Set is a set of Strs.
type Set struct {
	m *Map[struct{}]
}

// NewSet produces a Set that uses the PassThrough hasher.
func NewSet(capacity int) *Set {
	return &Set{m: New[struct{}](capacity)}
}

// NewSaltedSet produces a Set with its own randomly salted hasher.
func NewSaltedSet(capacity int) *Set {
	return &Set{m: NewSalted[struct{}](capacity)}
}

// Add adds k to s.
// It reports whether k was newly added.
func (s *Set) Add(k *hstr.Str) bool {
	if s.Has(k) {
		return false
	}
	s.m.Put(k, struct{}{})
	return true
}

// Has tells whether k is in s.
func (s *Set) Has(k *hstr.Str) bool {
	_, ok := s.m.Get(k)
	return ok
}

// HasUnhashed tells whether the key with content u is in s.
func (s *Set) HasUnhashed(u hstr.Unhashed) bool {
	_, ok := s.m.GetUnhashed(u)
	return ok
}

// Remove removes k from s.
func (s *Set) Remove(k *hstr.Str) {
	s.m.Delete(k)
}

// Len is the number of members of s.
func (s *Set) Len() int {
	return s.m.Len()
}

// All produces the members of s in no particular order.
func (s *Set) All() iter.Seq[*hstr.Str] {
	return func(yield func(*hstr.Str) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
