package hstr

import "unsafe"

const (
	minBlockSize = 4 << 10
	maxBlockSize = 1 << 20

	// Strings longer than this get a block of their own
	// rather than retiring the rest of the current block.
	oversize = maxBlockSize / 4

	slabLen = 256
)

// Host is an arena that owns the memory of the Strs it allocates.
// Content bytes are carved out of large blocks with a bump pointer;
// nothing is freed or moved while the Host is in use,
// so a *Str from a Host stays valid for as long as anything refers to it.
//
// A Host is not safe for concurrent use.
//
// Running out of memory while allocating is fatal,
// as it is for any Go allocation.
type Host struct {
	block []byte // unused tail of the current block
	last  int    // size of the current block
	strs  []Str  // current slab of Str headers, never grown past its capacity
	slabs [][]Str

	gen      uint64
	count    int
	used     int64
	reserved int64
}

// NewHost produces a new, empty Host.
func NewHost() *Host {
	return &Host{}
}

// NewHostWithCapacity produces a new Host
// with n bytes of content space reserved up front.
func NewHostWithCapacity(n int) *Host {
	h := &Host{}
	if n > 0 {
		h.grow(n)
	}
	return h
}

// Alloc copies s into h and returns the new Str.
// It does not check for an existing copy;
// that is what a Cache is for.
func (h *Host) Alloc(s string) *Str {
	return h.AllocWithHash(Hash(s), s)
}

// AllocWithHash is like Alloc but uses a hash the caller already computed.
// The hash must be Hash(s).
func (h *Host) AllocWithHash(hash uint64, s string) *Str {
	str := h.header()
	str.hash = hash
	if len(s) > 0 {
		b := h.bump(len(s))
		copy(b, s)
		str.s = unsafe.String(unsafe.SliceData(b), len(b))
	}
	h.count++
	h.used += int64(HashSize + len(s))
	return str
}

// Used is the number of bytes handed out so far,
// counting HashSize bytes plus the content for each Str.
func (h *Host) Used() int64 { return h.used }

// Reserved is the number of content bytes h has obtained from the runtime.
func (h *Host) Reserved() int64 { return h.reserved }

// Count is the number of Strs allocated.
func (h *Host) Count() int { return h.count }

// Generation counts how many times h has been reset.
func (h *Host) Generation() uint64 { return h.gen }

func (h *Host) header() *Str {
	if len(h.strs) == cap(h.strs) {
		slab := make([]Str, slabLen)
		h.slabs = append(h.slabs, slab)
		h.strs = slab[:0]
	}
	h.strs = h.strs[:len(h.strs)+1]
	return &h.strs[len(h.strs)-1]
}

func (h *Host) bump(n int) []byte {
	if n > len(h.block) {
		if n > oversize {
			h.reserved += int64(n)
			return make([]byte, n)
		}
		h.grow(n)
	}
	b := h.block[:n:n]
	h.block = h.block[n:]
	return b
}

func (h *Host) grow(n int) {
	size := h.last * 2
	if size < minBlockSize {
		size = minBlockSize
	}
	if size > maxBlockSize {
		size = maxBlockSize
	}
	if size < n {
		size = n
	}
	h.block = make([]byte, size)
	h.last = size
	h.reserved += int64(size)
}

// Caller must have exclusive use of h.
// Strs already handed out remain readable
// (the garbage collector keeps their blocks alive),
// but every Handle made before the reset reports ErrStaleHandle.
func (h *Host) reset() {
	*h = Host{gen: h.gen + 1}
}

// Handle is a generation-checked reference to a Str allocated by a Host.
// It detects use after the Host has been reset.
type Handle struct {
	host *Host
	gen  uint64
	s    *Str
}

// Handle wraps s in a Handle tagged with h's current generation.
// It fails with ErrForeignStr if s was not allocated by h
// since its last reset.
func (h *Host) Handle(s *Str) (Handle, error) {
	if !h.owns(s) {
		return Handle{}, ErrForeignStr
	}
	return Handle{host: h, gen: h.gen, s: s}, nil
}

// owns tells whether s is one of the headers h has handed out.
// The newest slab is checked first.
func (h *Host) owns(s *Str) bool {
	if s == nil {
		return false
	}
	var (
		p    = uintptr(unsafe.Pointer(s))
		size = unsafe.Sizeof(Str{})
	)
	for i := len(h.slabs) - 1; i >= 0; i-- {
		slab := h.slabs[i]
		n := len(slab)
		if i == len(h.slabs)-1 {
			n = len(h.strs)
		}
		lo := uintptr(unsafe.Pointer(unsafe.SliceData(slab)))
		if p >= lo && p < lo+uintptr(n)*size {
			return true
		}
	}
	return false
}

// Str returns the referenced Str,
// or ErrStaleHandle if its Host has been reset since the handle was made.
func (hd Handle) Str() (*Str, error) {
	if hd.host == nil || hd.host.gen != hd.gen {
		return nil, ErrStaleHandle
	}
	return hd.s, nil
}
