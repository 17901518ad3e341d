package hstr

import (
	"sync"

	"golang.org/x/sys/cpu"
)

const (
	shardBits = 6

	// NumShards is the number of independently locked shards in a Shards.
	NumShards = 1 << shardBits
)

// ShardIndex tells which shard of a Shards holds content with the given hash.
// It uses the top bits of the hash,
// leaving the low bits that a shard's own index uses for bucket placement
// uncorrelated with the choice of shard.
func ShardIndex(hash uint64) int {
	return int((hash >> (64 - shardBits)) % NumShards)
}

var _ Interner = &Shards{}

// Shards is a concurrent string-interning cache.
// It is a fixed array of NumShards Scopes,
// each behind its own mutex,
// and routes each request to exactly one of them by hash.
// Since no operation locks more than one shard,
// there is no lock ordering to get wrong,
// and operations on different shards proceed in parallel.
//
// The Strs a Shards returns are valid for the life of the Shards.
type Shards struct {
	shards [NumShards]shard
}

type shard struct {
	mu    sync.Mutex
	scope Scope
	_     cpu.CacheLinePad
}

// NewShards produces a new, empty Shards.
func NewShards() *Shards {
	s := new(Shards)
	for i := range s.shards {
		s.shards[i].scope = Scope{Host: NewHost(), Cache: NewCache()}
	}
	return s
}

// Intern interns str.
func (s *Shards) Intern(str string) *Str {
	return s.InternWithHash(Hash(str), str)
}

// InternStr is like Intern but uses the precomputed hash of k.
func (s *Shards) InternStr(k *Str) *Str {
	return s.InternWithHash(k.hash, k.s)
}

// InternWithHash implements Interner.
func (s *Shards) InternWithHash(hash uint64, str string) *Str {
	sh := &s.shards[ShardIndex(hash)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.scope.InternWithHash(hash, str)
}

// Get looks up str without allocating.
func (s *Shards) Get(str string) (*Str, bool) {
	return s.GetWithHash(Hash(str), str)
}

// GetWithHash implements Getter.
func (s *Shards) GetWithHash(hash uint64, str string) (*Str, bool) {
	sh := &s.shards[ShardIndex(hash)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.scope.GetWithHash(hash, str)
}

// ShardStats describes the contents of one shard.
type ShardStats struct {
	Entries  int
	Used     int64
	Reserved int64
}

// Stats reports on each shard in turn.
// The shards are locked one at a time,
// so the result is not a consistent snapshot of the whole set.
func (s *Shards) Stats() [NumShards]ShardStats {
	var out [NumShards]ShardStats
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		out[i] = ShardStats{
			Entries:  sh.scope.Cache.Len(),
			Used:     sh.scope.Host.Used(),
			Reserved: sh.scope.Host.Reserved(),
		}
		sh.mu.Unlock()
	}
	return out
}

// Empties every shard, one at a time.
// Every Str previously returned by s
// stops being canonical:
// interning the same content again allocates a new one.
func (s *Shards) reset() {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		sh.scope.reset()
		sh.mu.Unlock()
	}
}

// The global Shards is created on first use.
// sync.OnceValue makes that race-free.
// It is never torn down.
var global = sync.OnceValue(NewShards)

// Global returns the process-wide Shards.
func Global() *Shards {
	return global()
}

// InternGlobal interns s in the process-wide Shards.
// The result is valid for the life of the process.
func InternGlobal(s string) *Str {
	return Global().Intern(s)
}

// GetGlobal looks up s in the process-wide Shards without allocating.
func GetGlobal(s string) (*Str, bool) {
	return Global().Get(s)
}
