package hstr

import (
	"strings"

	"github.com/twmb/murmur3"
)

// HashSize is the number of bytes a hash occupies in the serialized form of a Str.
const HashSize = 8

// Str is a string together with its precomputed hash.
// A Str is immutable.
//
// A canonical Str is one allocated by a Host and indexed by a Cache;
// interning the same content again yields the same *Str.
// A free-standing Str (see New) belongs to no Host and is useful as a lookup key.
type Str struct {
	hash uint64
	s    string
}

// Hash computes the interning hash of s.
// It is a fixed-seed 64-bit murmur3 hash,
// so it is the same in every process.
func Hash(s string) uint64 {
	return murmur3.StringSum64(s)
}

// New produces a free-standing Str,
// not owned by any Host or Cache.
func New(s string) *Str {
	return &Str{hash: Hash(s), s: s}
}

// FromBytes is like New but copies its content from b.
func FromBytes(b []byte) *Str {
	return New(string(b))
}

// Hash returns the precomputed hash of s.
func (s *Str) Hash() uint64 { return s.hash }

// String returns the content of s.
func (s *Str) String() string { return s.s }

// Len is the length of the content of s in bytes.
func (s *Str) Len() int { return len(s.s) }

// Size is the length of the serialized form of s.
func (s *Str) Size() int { return HashSize + len(s.s) }

// Equal tells whether s and other have the same hash and content.
func (s *Str) Equal(other *Str) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.hash == other.hash && s.s == other.s
}

// Less orders Strs lexicographically by content.
func (s *Str) Less(other *Str) bool {
	return s.s < other.s
}

// Compare compares a and b lexicographically by content,
// returning -1, 0, or 1.
// The hash plays no part in ordering.
func Compare(a, b *Str) int {
	return strings.Compare(a.s, b.s)
}
