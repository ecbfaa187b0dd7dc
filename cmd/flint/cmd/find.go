package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFindCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "find [file ...]",
		Short: "Print every match as file:start:end:value",
		Long:  "Print every occurrence of every pattern. Offsets are inclusive byte offsets. Reads stdin when no file is given.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(g)
			if err != nil {
				return err
			}
			defer s.log.Sync() //nolint:errcheck

			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out, err := each(cmd.Context(), s, inputs, func(in input) (string, error) {
				var sb strings.Builder
				for _, set := range s.sets {
					for match := range set.matcher.Find(in.text) {
						fmt.Fprintf(&sb, "%s:%d:%d:%q\n", in.name, match.Start, match.End, match.Value)
					}
				}
				return sb.String(), nil
			})
			if err != nil {
				return err
			}
			for _, o := range out {
				fmt.Fprint(cmd.OutOrStdout(), o)
			}
			return nil
		},
	}
}
