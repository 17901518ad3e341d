package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bobg/hstr"
)

func TestGen(t *testing.T) {
	src, err := gen("lits", []string{"content-type", "hello", "content-type", ""})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "lits.go", src, 0); err != nil {
		t.Fatalf("generated code does not parse: %s\n%s", err, src)
	}

	s := string(src)
	if strings.Count(s, "hstr.Literal(") != 3 {
		t.Errorf("duplicate literal not removed:\n%s", s)
	}
	if !strings.Contains(s, "StrContentType") || !strings.Contains(s, "StrHello") {
		t.Errorf("missing declarations:\n%s", s)
	}

	// The generated hash must be the one Literal will accept.
	for _, lit := range []string{"content-type", "hello", ""} {
		want := hstr.New(lit)
		if got := hstr.Literal(want.Hash(), lit); !got.Equal(want) {
			t.Errorf("literal %q does not round-trip", lit)
		}
	}

	if _, err := gen("lits", []string{"a-b", "a b"}); err == nil {
		t.Error("got no error for clashing identifiers")
	}
	if _, err := gen("not a package", []string{"x"}); err == nil {
		t.Error("got no error for bad package name")
	}
}

func TestDecodeHex(t *testing.T) {
	good := hex.EncodeToString(hstr.New("bruh").Bytes())
	line, err := decodeHex(good)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(line, `"bruh"`) || !strings.Contains(line, "ok") {
		t.Errorf("got %q", line)
	}

	line, err = decodeHex("010203")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(line, "shorter than hash") {
		t.Errorf("got %q", line)
	}

	if _, err := decodeHex("zz"); err == nil {
		t.Error("got no error for bad hex")
	}
}

func TestInternFiles(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i, content := range []string{"a\nb\na\n", "b\nc\n"} {
		name := filepath.Join(dir, string(rune('0'+i)))
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		files = append(files, name)
	}

	res, err := internFiles(context.Background(), hstr.NewShards(), files, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.total != 5 || res.distinct != 3 {
		t.Errorf("got %+v, want 5 total, 3 distinct", res)
	}

	// A Scope is not safe for concurrent use, so it gets wrapped.
	res, err = internFiles(context.Background(), hstr.NewScope(), files, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.distinct != 3 {
		t.Errorf("got %d distinct, want 3", res.distinct)
	}

	res, err = internFiles(context.Background(), hstr.NewScope(), nil, strings.NewReader("x\nx\ny\n"))
	if err != nil {
		t.Fatal(err)
	}
	if res.total != 3 || res.distinct != 2 {
		t.Errorf("got %+v from stdin", res)
	}

	if _, err := internFiles(context.Background(), hstr.NewShards(), []string{filepath.Join(dir, "missing")}, nil); err == nil {
		t.Error("got no error for a missing file")
	}
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "hstr.yaml")
	err := os.WriteFile(conf, []byte("log_level: error\ninterner:\n  type: lru\n  size: 4\n  nested:\n    type: shards\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("p\nq\np\n"))
	cmd.SetArgs([]string{"--config", conf, "intern"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "3 lines, 2 distinct\n" {
		t.Errorf("got %q", got)
	}

	cmd = newRootCmd()
	out.Reset()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"encode", "bruh"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(out.String()), hex.EncodeToString(hstr.New("bruh").Bytes()); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
