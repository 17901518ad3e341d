package hstr

import (
	"errors"
	"fmt"
)

var (
	// ErrTooShort is the error returned when decoding a buffer
	// too short to hold a hash.
	ErrTooShort = errors.New("buffer shorter than hash")

	// ErrInvalidEncoding is the error returned when decoding a buffer
	// whose content is not valid UTF-8.
	// The error returned by Decode is an *EncodingError,
	// which unwraps to this.
	ErrInvalidEncoding = errors.New("invalid UTF-8 content")

	// ErrStaleHandle is the error returned by Handle.Str
	// when the Host that made the handle has since been reset.
	ErrStaleHandle = errors.New("stale handle")

	// ErrForeignStr is the error returned by Host.Handle
	// for a Str that the Host did not allocate.
	ErrForeignStr = errors.New("Str not allocated by this host")

	// ErrNotZero is the error returned by Str.UnmarshalBinary
	// when the receiver is not the zero Str.
	// A Str never changes once made.
	ErrNotZero = errors.New("unmarshaling into a non-zero Str")
)

// EncodingError describes invalid UTF-8 in a decoded buffer.
type EncodingError struct {
	// ValidUpTo is the length of the longest valid UTF-8 prefix of the content
	// (not counting the hash).
	ValidUpTo int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 content after byte %d", e.ValidUpTo)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
