package hstr

// Presence is the result of a lookup.
// Either it holds the Str that was found,
// or it carries the content and its already-computed hash
// so that later lookups and the final allocation need not hash again.
//
// Chain calls from the shortest-lived cache to the longest-lived one.
// The Str a chain produces is valid for as long as
// the last Host or Cache the chain actually touched.
type Presence struct {
	str  *Str
	hash uint64
	key  string
}

// Lookup hashes s and looks it up in g.
func Lookup(g Getter, s string) Presence {
	return lookup(g, Hash(s), s)
}

func lookup(g Getter, hash uint64, s string) Presence {
	if got, ok := g.GetWithHash(hash, s); ok {
		return Presence{str: got, hash: hash, key: s}
	}
	return Presence{hash: hash, key: s}
}

// Presence looks up s in c.
func (c *Cache) Presence(s string) Presence {
	return lookup(c, Hash(s), s)
}

// PresenceStr looks up k in c using its precomputed hash.
func (c *Cache) PresenceStr(k *Str) Presence {
	return lookup(c, k.hash, k.s)
}

// Get returns the Str that was found, if any.
func (p Presence) Get() (*Str, bool) {
	return p.str, p.str != nil
}

// Hash is the hash of the content that was looked up.
func (p Presence) Hash() uint64 { return p.hash }

// Key is the content that was looked up.
func (p Presence) Key() string { return p.key }

// OrPresentIn looks in g if p is absent,
// reusing the hash carried in p.
func (p Presence) OrPresentIn(g Getter) Presence {
	if p.str != nil {
		return p
	}
	return lookup(g, p.hash, p.key)
}

// OrInternWith returns the Str in p if there is one.
// Otherwise it interns the content into target,
// allocating in h if target does not have it either.
func (p Presence) OrInternWith(h *Host, target *Cache) *Str {
	if p.str != nil {
		return p.str
	}
	return target.InternWithHash(h, p.hash, p.key)
}

// OrIntern is like OrInternWith but falls back to any Interner,
// such as a Scope or a Shards.
func (p Presence) OrIntern(in Interner) *Str {
	if p.str != nil {
		return p.str
	}
	return in.InternWithHash(p.hash, p.key)
}
