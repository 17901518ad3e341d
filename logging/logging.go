// Package logging implements an interner that delegates everything to a nested interner,
// logging operations as they happen.
package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bobg/hstr"
	"github.com/bobg/hstr/interner"
)

var _ hstr.Interner = &Interner{}

// Interner logs each call at debug level and passes it on.
type Interner struct {
	in  hstr.Interner
	log *zap.Logger
}

// New produces a new Interner wrapping in.
// A nil logger means zap.L().
func New(in hstr.Interner, log *zap.Logger) *Interner {
	if log == nil {
		log = zap.L()
	}
	return &Interner{in: in, log: log}
}

// GetWithHash implements hstr.Getter.
func (i *Interner) GetWithHash(hash uint64, s string) (*hstr.Str, bool) {
	got, ok := i.in.GetWithHash(hash, s)
	if ce := i.log.Check(zapcore.DebugLevel, "Get"); ce != nil {
		ce.Write(zap.String("s", s), zap.Uint64("hash", hash), zap.Bool("found", ok))
	}
	return got, ok
}

// InternWithHash implements hstr.Interner.
func (i *Interner) InternWithHash(hash uint64, s string) *hstr.Str {
	got := i.in.InternWithHash(hash, s)
	if ce := i.log.Check(zapcore.DebugLevel, "Intern"); ce != nil {
		ce.Write(zap.String("s", s), zap.Uint64("hash", hash), zap.String("ref", fmt.Sprintf("%p", got)))
	}
	return got
}

func init() {
	interner.Register("logging", func(ctx context.Context, conf map[string]interface{}) (hstr.Interner, error) {
		nested, err := interner.Nested(ctx, conf)
		if err != nil {
			return nil, err
		}
		return New(nested, nil), nil
	})
}
