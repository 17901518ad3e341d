package hstr

import "iter"

// Getter is anything that can look up a Str by hash and content.
type Getter interface {
	// GetWithHash returns the indexed Str with the given content,
	// whose hash the caller has already computed.
	GetWithHash(hash uint64, s string) (*Str, bool)
}

// Interner is a Getter that can also add new content.
type Interner interface {
	Getter

	// InternWithHash returns the indexed Str with the given content,
	// allocating and indexing a new one if there is none.
	// The hash must be Hash(s).
	InternWithHash(hash uint64, s string) *Str
}

var _ Getter = &Cache{}

// Cache indexes Strs by hash,
// holding at most one Str for each distinct content.
// It does not own the memory of the Strs it indexes.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	entries map[uint64]*Str

	// Strs whose hash collides with the one in entries.
	collisions map[uint64][]*Str

	n int
}

// NewCache produces a new, empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]*Str)}
}

// Get hashes s and returns the indexed Str with the same content, if any.
// It never allocates.
func (c *Cache) Get(s string) (*Str, bool) {
	return c.GetWithHash(Hash(s), s)
}

// GetStr is like Get but uses the precomputed hash of k.
func (c *Cache) GetStr(k *Str) (*Str, bool) {
	return c.GetWithHash(k.hash, k.s)
}

// GetWithHash implements Getter.
func (c *Cache) GetWithHash(hash uint64, s string) (*Str, bool) {
	if got, ok := c.entries[hash]; ok {
		if got.s == s {
			return got, true
		}
		for _, got := range c.collisions[hash] {
			if got.s == s {
				return got, true
			}
		}
	}
	return nil, false
}

// Intern returns the indexed Str with content s,
// allocating it in h and indexing it if it is not already present.
// The result stays valid for as long as h is not reset,
// independent of the lifetime of c.
func (c *Cache) Intern(h *Host, s string) *Str {
	return c.InternWithHash(h, Hash(s), s)
}

// InternStr is like Intern but uses the precomputed hash of k.
// If k is not present,
// a copy of it is allocated in h;
// k itself is never indexed.
// (See Adopt for that.)
func (c *Cache) InternStr(h *Host, k *Str) *Str {
	return c.InternWithHash(h, k.hash, k.s)
}

// InternWithHash is like Intern but uses a hash the caller already computed.
// The hash must be Hash(s).
func (c *Cache) InternWithHash(h *Host, hash uint64, s string) *Str {
	if got, ok := c.GetWithHash(hash, s); ok {
		return got
	}
	str := h.AllocWithHash(hash, s)
	c.insert(str)
	return str
}

// Adopt indexes s,
// whose memory is owned elsewhere
// (another Host, or a free-standing Str),
// without copying it.
// If c already has a Str with the same content,
// that one is returned instead and s is not indexed.
//
// The owner of s must outlive every use of c.
func (c *Cache) Adopt(s *Str) *Str {
	if got, ok := c.GetStr(s); ok {
		return got
	}
	c.insert(s)
	return s
}

// Caller must have checked that no Str with this content is present.
func (c *Cache) insert(s *Str) {
	if c.entries == nil {
		c.entries = make(map[uint64]*Str)
	}
	if _, ok := c.entries[s.hash]; ok {
		if c.collisions == nil {
			c.collisions = make(map[uint64][]*Str)
		}
		c.collisions[s.hash] = append(c.collisions[s.hash], s)
	} else {
		c.entries[s.hash] = s
	}
	c.n++
}

// Len is the number of Strs indexed by c.
func (c *Cache) Len() int { return c.n }

// Clear removes every entry from c.
// The Strs themselves are unaffected
// and remain valid wherever else they are held;
// they simply can no longer be found through c.
func (c *Cache) Clear() {
	c.entries = make(map[uint64]*Str)
	c.collisions = nil
	c.n = 0
}

// All produces the Strs indexed by c, in no particular order.
// The sequence may be ranged over more than once.
// Changing c while ranging over it has unspecified results.
func (c *Cache) All() iter.Seq[*Str] {
	return func(yield func(*Str) bool) {
		for hash, s := range c.entries {
			if !yield(s) {
				return
			}
			for _, s := range c.collisions[hash] {
				if !yield(s) {
					return
				}
			}
		}
	}
}
