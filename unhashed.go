package hstr

// Unhashed is a lookup key made from a plain string.
// Its hash is computed each time it is needed and never stored,
// so making one costs nothing.
// Use it to probe a table keyed by Strs
// without first building a free-standing Str.
type Unhashed string

// Hash computes the interning hash of u.
func (u Unhashed) Hash() uint64 {
	return Hash(string(u))
}

// Str produces a free-standing Str with the content of u.
func (u Unhashed) Str() *Str {
	return New(string(u))
}

// Key produces a Str value with the content of u,
// for use as a map key.
// Unlike Str it does not allocate.
func (u Unhashed) Key() Str {
	return Str{hash: u.Hash(), s: string(u)}
}
