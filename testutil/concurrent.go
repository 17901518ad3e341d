package testutil

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/bobg/hstr"
)

// Concurrent interns the same strings from several goroutines at once
// and checks that every goroutine got the same Strs.
// The Interner must be safe for concurrent use.
func Concurrent(t *testing.T, in hstr.Interner, goroutines, rounds int) {
	words := make([]string, 100)
	for i := range words {
		words[i] = fmt.Sprintf("word-%d", i)
	}

	results := make([][]*hstr.Str, goroutines)

	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		i := i
		g.Go(func() error {
			got := make([]*hstr.Str, len(words))
			for r := 0; r < rounds; r++ {
				for j, w := range words {
					s := in.InternWithHash(hstr.Hash(w), w)
					if got[j] != nil && got[j] != s {
						return fmt.Errorf("goroutine %d: %q changed identity in round %d", i, w, r)
					}
					got[j] = s
				}
			}
			results[i] = got
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for i := 1; i < goroutines; i++ {
		for j, w := range words {
			if results[i][j] != results[0][j] {
				t.Errorf("goroutines 0 and %d got different Strs for %q", i, w)
			}
		}
	}
}
