package hstr

import (
	"sort"
	"testing"
)

func TestStr(t *testing.T) {
	s := New("bruh")
	if s.String() != "bruh" {
		t.Errorf("got %q, want bruh", s.String())
	}
	if s.Len() != 4 {
		t.Errorf("got length %d, want 4", s.Len())
	}
	if s.Size() != 4+HashSize {
		t.Errorf("got size %d, want %d", s.Size(), 4+HashSize)
	}

	h := s.Hash()
	for i := 0; i < 3; i++ {
		if got := s.Hash(); got != h {
			t.Fatalf("hash changed from %x to %x", h, got)
		}
	}
	if h != Hash("bruh") {
		t.Errorf("got hash %x, want %x", h, Hash("bruh"))
	}
}

func TestEqual(t *testing.T) {
	var (
		a = New("a")
		b = New("a")
		c = New("c")

		// Same content, wrong hash: can only be made inside the package.
		forged = &Str{hash: a.hash + 1, s: "a"}

		// Same hash, different content.
		colliding = &Str{hash: a.hash, s: "z"}
	)

	cases := []struct {
		x, y *Str
		want bool
	}{
		{x: a, y: a, want: true},
		{x: a, y: b, want: true},
		{x: a, y: c, want: false},
		{x: a, y: forged, want: false},
		{x: a, y: colliding, want: false},
		{x: a, y: nil, want: false},
		{x: nil, y: nil, want: true},
	}
	for i, tc := range cases {
		if got := tc.x.Equal(tc.y); got != tc.want {
			t.Errorf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	strs := []*Str{New("pear"), New("apple"), New("fig"), New("apple pie")}
	sort.Slice(strs, func(i, j int) bool { return strs[i].Less(strs[j]) })

	var got []string
	for _, s := range strs {
		got = append(got, s.String())
	}
	want := []string{"apple", "apple pie", "fig", "pear"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if c := Compare(New("a"), New("a")); c != 0 {
		t.Errorf("Compare(a, a) = %d", c)
	}
	if c := Compare(New("a"), New("b")); c != -1 {
		t.Errorf("Compare(a, b) = %d", c)
	}
}

func TestUnhashed(t *testing.T) {
	u := Unhashed("probe")
	if u.Hash() != Hash("probe") {
		t.Errorf("got %x, want %x", u.Hash(), Hash("probe"))
	}
	k := u.Key()
	if !u.Str().Equal(&k) {
		t.Error("Key and Str disagree")
	}
}
