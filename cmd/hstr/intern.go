package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bobg/hstr"
)

func (c *maincmd) internCmd() *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "intern [FILE...]",
		Short: "intern each line of the input and report how many were distinct",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := internFiles(cmd.Context(), c.in, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d lines, %d distinct\n", res.total, res.distinct)

			if stats {
				shards, ok := c.in.(*hstr.Shards)
				if !ok {
					return fmt.Errorf("--stats needs a shards interner, not %T", c.in)
				}
				for i, st := range shards.Stats() {
					if st.Entries == 0 {
						continue
					}
					fmt.Fprintf(out, "shard %2d: %d entries, %d bytes used, %d reserved\n", i, st.Entries, st.Used, st.Reserved)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "print per-shard statistics")
	return cmd
}

type internResult struct {
	total, distinct int
}

// lockedInterner serializes access to an Interner
// that is not safe for concurrent use.
type lockedInterner struct {
	mu sync.Mutex
	in hstr.Interner
}

func (l *lockedInterner) GetWithHash(hash uint64, s string) (*hstr.Str, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.GetWithHash(hash, s)
}

func (l *lockedInterner) InternWithHash(hash uint64, s string) *hstr.Str {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.InternWithHash(hash, s)
}

// internFiles interns every line of the named files,
// reading them concurrently,
// or of stdin if there are none.
// Distinct lines are counted by identity of the interned Str.
func internFiles(ctx context.Context, in hstr.Interner, files []string, stdin io.Reader) (internResult, error) {
	if _, ok := in.(*hstr.Shards); !ok {
		in = &lockedInterner{in: in}
	}

	var (
		mu   sync.Mutex
		seen = make(map[*hstr.Str]struct{})
		res  internResult
	)
	record := func(strs []*hstr.Str) {
		mu.Lock()
		defer mu.Unlock()
		res.total += len(strs)
		for _, s := range strs {
			seen[s] = struct{}{}
		}
	}

	if len(files) == 0 {
		strs, err := internLines(ctx, in, stdin)
		if err != nil {
			return res, errors.Wrap(err, "reading stdin")
		}
		record(strs)
		res.distinct = len(seen)
		return res, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range files {
		name := name
		g.Go(func() error {
			f, err := os.Open(name)
			if err != nil {
				return errors.Wrapf(err, "opening %s", name)
			}
			defer f.Close()

			strs, err := internLines(ctx, in, f)
			if err != nil {
				return errors.Wrapf(err, "reading %s", name)
			}
			zap.L().Debug("interned file", zap.String("file", name), zap.Int("lines", len(strs)))
			record(strs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	res.distinct = len(seen)
	return res, nil
}

func internLines(ctx context.Context, in hstr.Interner, r io.Reader) ([]*hstr.Str, error) {
	var strs []*hstr.Str
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := sc.Text()
		strs = append(strs, in.InternWithHash(hstr.Hash(line), line))
	}
	return strs, sc.Err()
}
