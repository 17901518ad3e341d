//go:build hstr_unchecked

package hstr

// This file exists only in builds using the hstr_unchecked tag,
// e.g. go test -tags hstr_unchecked -bench .
// None of it is reachable from ordinary builds.

// UncheckedReset empties h for reuse.
// Every Handle made from h reports ErrStaleHandle afterwards,
// and the Strs h allocated must no longer be treated as canonical.
// For benchmarking only.
func (h *Host) UncheckedReset() {
	h.reset()
}

// UncheckedReset empties every shard of s.
// Every Str s ever returned stops being canonical.
// For benchmarking only.
func (s *Shards) UncheckedReset() {
	s.reset()
}

// UncheckedResetGlobal empties the process-wide Shards.
// Every Str ever returned by InternGlobal stops being canonical,
// everywhere in the process.
// For benchmarking only.
func UncheckedResetGlobal() {
	Global().reset()
}
