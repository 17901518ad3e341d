// Command hstr is a CLI for interning, encoding, and decoding hash-tagged strings,
// and for generating Go declarations of precomputed literals.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/bobg/hstr"
	"github.com/bobg/hstr/interner"
	_ "github.com/bobg/hstr/logging"
	_ "github.com/bobg/hstr/lru"
)

type maincmd struct {
	configFile string
	logLevel   string

	conf config
	log  *zap.Logger
	in   hstr.Interner
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &maincmd{}

	root := &cobra.Command{
		Use:          "hstr",
		Short:        "hash-tagged string tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}
	c.addFlags(root.PersistentFlags())

	root.AddCommand(
		c.internCmd(),
		c.encodeCmd(),
		c.decodeCmd(),
		c.genCmd(),
	)
	return root
}

func (c *maincmd) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.configFile, "config", "", "path to YAML config file")
	fs.StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
}

func (c *maincmd) setup(ctx context.Context) error {
	conf, err := loadConfig(c.configFile)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		conf.LogLevel = c.logLevel
	}
	c.conf = conf

	c.log, err = newLogger(conf.LogLevel)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(c.log)

	if len(conf.Interner) == 0 {
		c.in = hstr.Global()
		return nil
	}
	c.in, err = interner.FromConfig(ctx, conf.Interner)
	return err
}
