package hstr

var _ Interner = &Scope{}

// Scope pairs a Host with a Cache over it.
// It is the usual way to intern strings for one allocation scope,
// e.g. one request or one parse.
//
// A Scope is not safe for concurrent use.
type Scope struct {
	Host  *Host
	Cache *Cache
}

// NewScope produces a Scope with a new Host and a new Cache.
func NewScope() *Scope {
	return &Scope{Host: NewHost(), Cache: NewCache()}
}

// NewScopeWithCapacity is like NewScope
// but reserves n bytes of content space in the Host.
func NewScopeWithCapacity(n int) *Scope {
	return &Scope{Host: NewHostWithCapacity(n), Cache: NewCache()}
}

// Intern interns s.
func (sc *Scope) Intern(s string) *Str {
	return sc.Cache.InternWithHash(sc.Host, Hash(s), s)
}

// Get looks up s without allocating.
func (sc *Scope) Get(s string) (*Str, bool) {
	return sc.Cache.Get(s)
}

// GetWithHash implements Getter.
func (sc *Scope) GetWithHash(hash uint64, s string) (*Str, bool) {
	return sc.Cache.GetWithHash(hash, s)
}

// InternWithHash implements Interner.
func (sc *Scope) InternWithHash(hash uint64, s string) *Str {
	return sc.Cache.InternWithHash(sc.Host, hash, s)
}

// Handle wraps s in a generation-checked Handle.
// It fails with ErrForeignStr if s was not allocated in sc.
func (sc *Scope) Handle(s *Str) (Handle, error) {
	return sc.Host.Handle(s)
}

// Caller must have exclusive use of sc.
func (sc *Scope) reset() {
	sc.Host.reset()
	sc.Cache.Clear()
}
