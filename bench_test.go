package hstr

import (
	"fmt"
	"testing"
)

func benchWords() []string {
	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("benchmark word number %d", i)
	}
	return words
}

func BenchmarkHash(b *testing.B) {
	words := benchWords()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Hash(words[i%len(words)])
	}
}

func BenchmarkScopeIntern(b *testing.B) {
	words := benchWords()
	sc := NewScope()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc.Intern(words[i%len(words)])
	}
}

func BenchmarkShardsParallel(b *testing.B) {
	words := benchWords()
	s := NewShards()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		var i int
		for pb.Next() {
			s.Intern(words[i%len(words)])
			i++
		}
	})
}

func BenchmarkPresenceChain(b *testing.B) {
	words := benchWords()
	var (
		local  = NewScope()
		shared = NewShards()
	)
	for _, w := range words[:len(words)/2] {
		shared.Intern(w)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := words[i%len(words)]
		local.Cache.Presence(w).OrPresentIn(shared).OrInternWith(local.Host, local.Cache)
	}
}
