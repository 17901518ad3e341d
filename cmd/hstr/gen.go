package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bobg/hstr"
)

func (c *maincmd) genCmd() *cobra.Command {
	var pkg, out string
	cmd := &cobra.Command{
		Use:   "gen LITERAL...",
		Short: "generate Go declarations of precomputed Strs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := gen(pkg, args)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return errors.Wrapf(os.WriteFile(out, src, 0644), "writing %s", out)
		},
	}
	cmd.Flags().StringVarP(&pkg, "package", "p", "main", "package name for the generated file")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

// gen produces a Go source file declaring one variable per distinct literal.
// Each hash is computed now, so at run time the values only go through hstr.Decode.
func gen(pkg string, lits []string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("bad package name %q", pkg)
	}

	buf := new(bytes.Buffer)
	fmt.Fprintln(buf, "// Code generated by hstr gen. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "package %s\n\n", pkg)
	fmt.Fprintln(buf, `import "github.com/bobg/hstr"`)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "var (")

	var (
		seen  = make(map[string]bool)
		names = make(map[string]string)
	)
	for _, lit := range lits {
		if seen[lit] {
			continue
		}
		seen[lit] = true

		s := hstr.New(lit)
		name := identFor(lit)
		if prev, ok := names[name]; ok {
			return nil, fmt.Errorf("literals %q and %q both map to %s", prev, lit, name)
		}
		names[name] = lit
		fmt.Fprintf(buf, "\t%s = hstr.Literal(0x%016x, %q)\n", name, s.Hash(), lit)
	}
	fmt.Fprintln(buf, ")")

	src, err := format.Source(buf.Bytes())
	return src, errors.Wrap(err, "formatting generated code")
}

// identFor makes an exported identifier from a literal,
// e.g. "content-type" becomes StrContentType.
func identFor(lit string) string {
	var b strings.Builder
	b.WriteString("Str")
	upper := true
	for _, r := range lit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 3 {
		return fmt.Sprintf("Str_%08x", uint32(hstr.Hash(lit)))
	}
	return b.String()
}
