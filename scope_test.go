package hstr_test

import (
	"errors"
	"testing"

	"github.com/bobg/hstr"
	"github.com/bobg/hstr/testutil"
)

func TestScope(t *testing.T) {
	testutil.Intern(t, hstr.NewScope())
	testutil.AllDistinct(t, func() hstr.Interner { return hstr.NewScope() })
	testutil.Collisions(t, hstr.NewScopeWithCapacity(1024))
}

func TestScopeHandle(t *testing.T) {
	sc := hstr.NewScope()
	s := sc.Intern("handled")
	hd, err := sc.Handle(s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := hd.Str()
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Error("handle returned a different Str")
	}

	if _, err := sc.Handle(hstr.NewScope().Intern("handled")); !errors.Is(err, hstr.ErrForeignStr) {
		t.Errorf("got %v, want ErrForeignStr", err)
	}
}

func TestShards(t *testing.T) {
	testutil.Intern(t, hstr.NewShards())
	testutil.AllDistinct(t, func() hstr.Interner { return hstr.NewShards() })
	testutil.Collisions(t, hstr.NewShards())
	testutil.Concurrent(t, hstr.NewShards(), 8, 10)
}

func TestGlobalInterner(t *testing.T) {
	testutil.Intern(t, hstr.Global())
	testutil.Concurrent(t, hstr.Global(), 4, 5)
}
