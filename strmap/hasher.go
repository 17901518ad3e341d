package strmap

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bobg/hstr"
)

// Hasher turns the precomputed hash of a Str into a table hash.
type Hasher interface {
	TableHash(hash uint64) uint64
}

// PassThrough is the Hasher that uses the precomputed hash unchanged.
// It is the fastest choice,
// but since the interning hash is fixed,
// anyone who can choose the keys can also choose their collisions.
// Use Salted for tables holding keys from outside the program.
type PassThrough struct{}

// TableHash implements Hasher.
func (PassThrough) TableHash(hash uint64) uint64 { return hash }

// Salted is a Hasher that mixes each hash with a random salt.
// Two Salted hashers almost certainly have different salts,
// so colliding keys for one table are no help against another.
type Salted struct {
	salt uint64
}

// NewSalted produces a Salted hasher with a salt from crypto/rand.
func NewSalted() Salted {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("cannot read random salt: " + err.Error())
	}
	return Salted{salt: binary.LittleEndian.Uint64(b[:])}
}

// TableHash implements Hasher.
func (s Salted) TableHash(hash uint64) uint64 {
	return mix(hash ^ s.salt)
}

// mix is the splitmix64 finalizer.
// Keys whose hashes agree in some bits
// no longer agree in any predictable bits afterwards.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func hashFunc(h Hasher) func(*hstr.Str, uintptr) uintptr {
	return func(k *hstr.Str, _ uintptr) uintptr {
		return uintptr(h.TableHash(k.Hash()))
	}
}
