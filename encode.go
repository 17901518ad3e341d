package hstr

import (
	"encoding/binary"
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
)

// AppendBytes appends the serialized form of s to dst:
// the hash in native byte order,
// followed by the content.
// The length is not encoded;
// it is up to the caller to convey it.
func (s *Str) AppendBytes(dst []byte) []byte {
	dst = binary.NativeEndian.AppendUint64(dst, s.hash)
	return append(dst, s.s...)
}

// Bytes returns the serialized form of s.
func (s *Str) Bytes() []byte {
	return s.AppendBytes(make([]byte, 0, s.Size()))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Str) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// Unlike Decode it copies the content out of b.
// The receiver must be the zero Str;
// otherwise it fails with ErrNotZero and s is unchanged.
func (s *Str) UnmarshalBinary(b []byte) error {
	if *s != (Str{}) {
		return ErrNotZero
	}
	d, err := Decode(b)
	if err != nil {
		return err
	}
	*s = Str{hash: d.hash, s: string(b[HashSize:])}
	return nil
}

// Decode interprets b as the serialized form of a Str.
// It fails with ErrTooShort if b cannot hold a hash,
// and with an *EncodingError if the content is not valid UTF-8.
//
// The result shares memory with b.
// The caller must not modify b while the result is in use.
// The hash is taken from b as is;
// a buffer produced by AppendBytes always carries the right one.
func Decode(b []byte) (*Str, error) {
	if len(b) < HashSize {
		return nil, errors.Wrapf(ErrTooShort, "decoding %d bytes", len(b))
	}
	content := b[HashSize:]
	if !utf8.Valid(content) {
		return nil, &EncodingError{ValidUpTo: validUpTo(content)}
	}
	return &Str{
		hash: binary.NativeEndian.Uint64(b),
		s:    unsafe.String(unsafe.SliceData(content), len(content)),
	}, nil
}

// MustDecode is like Decode but panics on error.
func MustDecode(b []byte) *Str {
	s, err := Decode(b)
	if err != nil {
		panic(err)
	}
	return s
}

// Literal produces a Str from a hash computed ahead of time,
// e.g. by a code generator.
// It goes through Decode,
// so content is validated like any other input.
func Literal(hash uint64, content string) *Str {
	b := binary.NativeEndian.AppendUint64(make([]byte, 0, HashSize+len(content)), hash)
	return MustDecode(append(b, content...))
}

func validUpTo(b []byte) int {
	var n int
	for n < len(b) {
		r, size := utf8.DecodeRune(b[n:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		n += size
	}
	return n
}
