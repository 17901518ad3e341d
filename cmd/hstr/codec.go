package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bobg/hstr"
)

func (c *maincmd) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode STRING...",
		Short: "print the serialized form of each string in hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				s := c.in.InternWithHash(hstr.Hash(arg), arg)
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(s.Bytes()))
			}
			return nil
		},
	}
}

func (c *maincmd) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX...",
		Short: "decode serialized strings given in hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				line, err := decodeHex(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

// decodeHex decodes one hex argument.
// A well-formed hex string that does not decode to a Str
// is reported in the output rather than as an error.
func decodeHex(arg string) (string, error) {
	b, err := hex.DecodeString(arg)
	if err != nil {
		return "", errors.Wrapf(err, "parsing hex %s", arg)
	}
	s, err := hstr.Decode(b)
	if err != nil {
		return fmt.Sprintf("%s: %s", arg, err), nil
	}
	check := "ok"
	if s.Hash() != hstr.Hash(s.String()) {
		check = "MISMATCH"
	}
	return fmt.Sprintf("%016x %q (hash %s)", s.Hash(), s.String(), check), nil
}
