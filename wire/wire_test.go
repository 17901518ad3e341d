package wire

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bobg/hstr"
)

func TestTable(t *testing.T) {
	var (
		words = []string{"", "a", "bruh", "日本語"}
		strs  []*hstr.Str
	)
	for _, w := range words {
		strs = append(strs, hstr.New(w))
	}
	b := Marshal(strs)
	b = AppendString(b, "plain")
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 12345)

	var got []string
	err := Each(b, func(s *hstr.Str) error {
		if s.Hash() != hstr.Hash(s.String()) {
			t.Errorf("%q has hash %x", s.String(), s.Hash())
		}
		got = append(got, s.String())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(append(words, "plain"), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestInternAll(t *testing.T) {
	sc := hstr.NewScope()
	bruh := sc.Intern("bruh")

	b := AppendStr(nil, hstr.New("bruh"))
	b = AppendString(b, "bruh")
	b = AppendStr(b, hstr.New("new"))

	got, err := InternAll(b, sc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d Strs, want 3", len(got))
	}
	if got[0] != bruh || got[1] != bruh {
		t.Error("InternAll did not find the existing Str")
	}

	// Interned content is copied out of the buffer.
	for i := range b {
		b[i] = 0
	}
	if got[2].String() != "new" {
		t.Errorf("got %q after clobbering the buffer", got[2].String())
	}
}

func TestInternAllChecked(t *testing.T) {
	sc := hstr.NewScope()
	a := sc.Intern("a")

	// A table entry for "a" carrying the hash of "b".
	forged := append(hstr.New("b").Bytes()[:hstr.HashSize], 'a')
	b := AppendStr(nil, hstr.New("c"))
	b = protowire.AppendTag(b, strField, protowire.BytesType)
	b = protowire.AppendBytes(b, forged)

	got, err := InternAllChecked(b, sc)
	if !errors.Is(err, ErrHashMismatch) {
		t.Fatalf("got %v, want ErrHashMismatch", err)
	}
	if len(got) != 1 || got[0].String() != "c" {
		t.Errorf("got %d Strs before the bad entry", len(got))
	}
	if sc.Cache.Len() != 2 {
		t.Errorf("cache has %d entries, want 2", sc.Cache.Len())
	}

	// Unchecked, the entry is trusted and filed apart from the real "a".
	got, err = InternAll(b, sc)
	if err != nil {
		t.Fatal(err)
	}
	if got[1] == a || got[1].Hash() != hstr.Hash("b") {
		t.Errorf("trusted entry was rehashed")
	}

	good := Marshal([]*hstr.Str{hstr.New("a")})
	good = AppendString(good, "a")
	got, err = InternAllChecked(good, sc)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != a || got[1] != a {
		t.Error("checked interning did not find the existing Str")
	}
}

func TestEachErrors(t *testing.T) {
	cases := []struct {
		name string
		b    []byte
		want error
	}{
		{
			name: "short Str",
			b:    protowire.AppendBytes(protowire.AppendTag(nil, strField, protowire.BytesType), []byte{1, 2, 3}),
			want: hstr.ErrTooShort,
		},
		{
			name: "bad string",
			b:    protowire.AppendBytes(protowire.AppendTag(nil, stringField, protowire.BytesType), []byte{0xff}),
			want: hstr.ErrInvalidEncoding,
		},
		{
			name: "bad content",
			b:    protowire.AppendBytes(protowire.AppendTag(nil, strField, protowire.BytesType), append(hstr.New("").Bytes(), 0xff)),
			want: hstr.ErrInvalidEncoding,
		},
		{
			name: "truncated",
			b:    AppendStr(nil, hstr.New("truncated"))[:5],
		},
		{
			name: "bad tag",
			b:    []byte{0x80},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Each(tc.b, func(*hstr.Str) error { return nil })
			if err == nil {
				t.Fatal("got no error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEachStops(t *testing.T) {
	stop := errors.New("stop")
	b := Marshal([]*hstr.Str{hstr.New("a"), hstr.New("b")})
	var n int
	err := Each(b, func(*hstr.Str) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Errorf("got %v after %d calls", err, n)
	}
}

func TestCBOR(t *testing.T) {
	s := hstr.New("cbor me")
	data, err := MarshalCBOR(s)
	if err != nil {
		t.Fatal(err)
	}
	again, err := MarshalCBOR(hstr.New("cbor me"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(data, again); diff != "" {
		t.Errorf("encoding is not deterministic (-first +second):\n%s", diff)
	}

	got, err := UnmarshalCBOR(data)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(s) {
		t.Errorf("got %q, want %q", got.String(), s.String())
	}

	sc := hstr.NewScope()
	canon := sc.Intern("cbor me")
	got, err = UnmarshalCBORInto(data, sc)
	if err != nil {
		t.Fatal(err)
	}
	if got != canon {
		t.Error("UnmarshalCBORInto did not find the canonical Str")
	}

	if _, err := UnmarshalCBOR([]byte{0xff}); err == nil {
		t.Error("got no error for malformed CBOR")
	}
}
