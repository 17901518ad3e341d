// Package wire reads and writes Strs in serialized form
// and rehydrates them into an interner.
//
// A table is a sequence of protobuf-wire fields.
// Field 1 holds a Str in the form produced by hstr.Str.AppendBytes
// (hash, then content),
// so reading it back needs no hashing.
// Field 2 holds plain UTF-8 content,
// whose hash is computed on reading.
// Other fields are skipped.
package wire

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bobg/hstr"
)

const (
	strField    protowire.Number = 1
	stringField protowire.Number = 2
)

// AppendStr appends s to a table in b as a field-1 entry.
func AppendStr(b []byte, s *hstr.Str) []byte {
	b = protowire.AppendTag(b, strField, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(s.Size()))
	return s.AppendBytes(b)
}

// AppendString appends s to a table in b as a field-2 entry.
func AppendString(b []byte, s string) []byte {
	b = protowire.AppendTag(b, stringField, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// Marshal produces a table of field-1 entries for strs.
func Marshal(strs []*hstr.Str) []byte {
	var n int
	for _, s := range strs {
		n += protowire.SizeTag(strField) + protowire.SizeBytes(s.Size())
	}
	b := make([]byte, 0, n)
	for _, s := range strs {
		b = AppendStr(b, s)
	}
	return b
}

// Each calls f for each entry in the table b.
// Field-1 entries are decoded without copying:
// the Strs share memory with b,
// which must not change while they are in use.
// Field-2 entries are copied and hashed.
//
// If f returns an error,
// Each stops and returns that error.
func Each(b []byte, f func(*hstr.Str) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "reading tag")
		}
		b = b[n:]

		if typ != protowire.BytesType || (num != strField && num != stringField) {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "skipping field %d", num)
			}
			b = b[n:]
			continue
		}

		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return errors.Wrapf(protowire.ParseError(n), "reading field %d", num)
		}
		b = b[n:]

		var s *hstr.Str
		if num == strField {
			var err error
			s, err = hstr.Decode(v)
			if err != nil {
				return errors.Wrap(err, "decoding Str")
			}
		} else {
			if !utf8.Valid(v) {
				return errors.Wrap(hstr.ErrInvalidEncoding, "decoding string")
			}
			s = hstr.FromBytes(v)
		}
		if err := f(s); err != nil {
			return err
		}
	}
	return nil
}

// ErrHashMismatch is the error returned by InternAllChecked
// for a field-1 entry whose carried hash is not the hash of its content.
var ErrHashMismatch = errors.New("carried hash does not match content")

// InternAll interns every entry of the table b into in,
// returning the canonical Strs in table order.
// Hashes carried in field-1 entries are reused, not recomputed,
// so b must come from a trusted source:
// an entry with a wrong hash is indexed under that hash,
// apart from any existing Str with the same content.
// Use InternAllChecked for tables from elsewhere.
//
// Interners that allocate on a miss,
// such as hstr.Scope and hstr.Shards,
// copy the content, so the result does not share memory with b.
func InternAll(b []byte, in hstr.Interner) ([]*hstr.Str, error) {
	return internAll(b, in, false)
}

// InternAllChecked is like InternAll
// but rehashes the content of each field-1 entry
// and fails with ErrHashMismatch if the carried hash is wrong.
// Nothing after the bad entry is interned.
func InternAllChecked(b []byte, in hstr.Interner) ([]*hstr.Str, error) {
	return internAll(b, in, true)
}

func internAll(b []byte, in hstr.Interner, check bool) ([]*hstr.Str, error) {
	var out []*hstr.Str
	err := Each(b, func(s *hstr.Str) error {
		if check && s.Hash() != hstr.Hash(s.String()) {
			return errors.Wrapf(ErrHashMismatch, "entry %d", len(out))
		}
		out = append(out, in.InternWithHash(s.Hash(), s.String()))
		return nil
	})
	return out, err
}
