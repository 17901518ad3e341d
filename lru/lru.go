// Package lru implements a bounded front cache of recently used Strs
// for a nested, longer-lived interner.
package lru

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/bobg/hstr"
	"github.com/bobg/hstr/interner"
)

var _ hstr.Interner = &Cache{}

// Cache remembers up to a fixed number of recently used Strs
// and sends everything else to a nested Interner,
// typically a Shards.
// Strs are never copied:
// every Str a Cache returns comes from the nested Interner
// and is valid for as long as that Interner's Strs are.
//
// A Cache is safe for concurrent use if its nested Interner is.
type Cache struct {
	c    *lru.Cache[uint64, *hstr.Str] // hash -> Str
	next hstr.Interner
}

// New produces a new Cache in front of next, holding up to size Strs.
func New(next hstr.Interner, size int) (*Cache, error) {
	c, err := lru.New[uint64, *hstr.Str](size)
	return &Cache{c: c, next: next}, err
}

// Intern interns s.
func (c *Cache) Intern(s string) *hstr.Str {
	return c.InternWithHash(hstr.Hash(s), s)
}

// Get looks up s without allocating.
func (c *Cache) Get(s string) (*hstr.Str, bool) {
	return c.GetWithHash(hstr.Hash(s), s)
}

// GetWithHash implements hstr.Getter.
func (c *Cache) GetWithHash(hash uint64, s string) (*hstr.Str, bool) {
	if got, ok := c.c.Get(hash); ok && got.String() == s {
		return got, true
	}
	got, ok := c.next.GetWithHash(hash, s)
	if ok {
		c.c.Add(hash, got)
	}
	return got, ok
}

// InternWithHash implements hstr.Interner.
func (c *Cache) InternWithHash(hash uint64, s string) *hstr.Str {
	if got, ok := c.c.Get(hash); ok && got.String() == s {
		return got
	}
	got := c.next.InternWithHash(hash, s)
	c.c.Add(hash, got)
	return got
}

// Len is the number of Strs currently remembered.
func (c *Cache) Len() int {
	return c.c.Len()
}

// Purge forgets every remembered Str.
// The nested Interner is unaffected.
func (c *Cache) Purge() {
	c.c.Purge()
}

func init() {
	interner.Register("lru", func(ctx context.Context, conf map[string]interface{}) (hstr.Interner, error) {
		size, err := interner.Int(conf, "size", 0)
		if err != nil {
			return nil, err
		}
		if size <= 0 {
			return nil, errors.New(`missing or non-positive "size" parameter`)
		}
		nested, err := interner.Nested(ctx, conf)
		if err != nil {
			return nil, err
		}
		return New(nested, size)
	})
}
