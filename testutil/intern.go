// Package testutil contains checks that any hstr.Interner implementation should pass.
package testutil

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/bobg/hstr"
)

// Intern permits testing an Interner implementation
// by interning some strings twice
// and making sure the second round finds the first round's Strs.
func Intern(t *testing.T, in hstr.Interner) {
	words := []string{"", "a", "bruh", "the quick brown fox", "日本語", "bruh "}

	first := make([]*hstr.Str, len(words))
	for i, w := range words {
		first[i] = in.InternWithHash(hstr.Hash(w), w)
		if got := first[i].String(); got != w {
			t.Fatalf("interned %q, got %q", w, got)
		}
		if got, want := first[i].Hash(), hstr.Hash(w); got != want {
			t.Errorf("hash of %q is %x, want %x", w, got, want)
		}
	}

	for i, w := range words {
		if got := in.InternWithHash(hstr.Hash(w), w); got != first[i] {
			t.Errorf("re-interning %q gave a different Str (%p vs. %p)", w, got, first[i])
		}
		got, ok := in.GetWithHash(hstr.Hash(w), w)
		if !ok {
			t.Fatalf("%q not found after interning", w)
		}
		if got != first[i] {
			t.Errorf("getting %q gave a different Str (%p vs. %p)", w, got, first[i])
		}
	}

	if _, ok := in.GetWithHash(hstr.Hash("never interned"), "never interned"); ok {
		t.Error("found a string that was never interned")
	}
}

// AllDistinct interns random sets of random strings
// and checks that exactly one Str comes back for each distinct string.
// The factory must produce an empty Interner on each call.
func AllDistinct(t *testing.T, factory func() hstr.Interner) {
	f := func(strs []string) bool {
		var (
			in   = factory()
			seen = make(map[string]*hstr.Str)
			want []string
		)
		for _, s := range strs {
			got := in.InternWithHash(hstr.Hash(s), s)
			if prev, ok := seen[s]; ok {
				if prev != got {
					t.Logf("%q interned twice", s)
					return false
				}
				continue
			}
			seen[s] = got
			want = append(want, s)
		}

		var got []string
		for s, str := range seen {
			if str.String() != s {
				t.Logf("Str for %q has content %q", s, str.String())
				return false
			}
			got = append(got, str.String())
		}

		sort.Strings(want)
		sort.Strings(got)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Logf("mismatch (-want +got):\n%s", diff)
			return false
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// Collisions interns two different strings under the same hash
// and makes sure the Interner keeps them apart.
func Collisions(t *testing.T, in hstr.Interner) {
	const hash = 0xdeadbeef

	a := in.InternWithHash(hash, "collision a")
	b := in.InternWithHash(hash, "collision b")
	if a == b {
		t.Fatal("colliding strings conflated")
	}
	if a.String() != "collision a" || b.String() != "collision b" {
		t.Fatalf("got %q and %q", a.String(), b.String())
	}

	for _, want := range []*hstr.Str{a, b} {
		got, ok := in.GetWithHash(hash, want.String())
		if !ok || got != want {
			t.Errorf("lookup of %q under colliding hash gave %v, %v", want.String(), got, ok)
		}
	}
	if _, ok := in.GetWithHash(hash, "collision c"); ok {
		t.Error("found a string that was never interned under a colliding hash")
	}
}
