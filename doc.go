// Package hstr is a string-interning cache.
//
// Interning maps every distinct string content to a single canonical value,
// so that a program handling the same strings over and over
// (symbol tables, tokenizers, metric tags)
// stores each one once
// and can compare or hash it without rescanning its bytes.
//
// The canonical value is a Str:
// the string's content together with its hash,
// computed once when the Str is made and never again.
// Two Strs are equal when their hashes match and their contents match;
// the hash comparison rejects almost all unequal pairs cheaply.
//
// New Strs are allocated in a Host,
// which is an arena:
// it hands out memory from large blocks with a bump pointer
// and never frees or moves anything it has handed out.
// A Cache indexes Strs by hash so that interning the same content twice
// finds the first allocation instead of making another.
// A Cache does not own the memory it indexes,
// so one Host can back many Caches,
// and one Cache can adopt Strs that some other Host allocated.
//
// Lookups in one cache can fall back to another without hashing twice.
// The Presence type carries the computed hash from one lookup to the next:
//
//	s := local.Presence("bruh").OrPresentIn(shared).OrInternWith(host, local)
//
// Caches in such a chain are listed from shortest-lived to longest-lived.
//
// Hosts and Caches are not safe for concurrent use.
// For that there is Shards,
// a fixed set of 64 (Host, Cache) pairs each behind its own mutex,
// and Global,
// the process-wide Shards used by InternGlobal and GetGlobal.
// No operation on a Shards holds more than one shard lock at a time.
//
// The serialized form of a Str
// (see Str.AppendBytes and Decode)
// is its 8-byte hash in native byte order followed by its UTF-8 content.
package hstr
