package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "count [file ...]",
		Short: "Print the number of matches per file",
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
			counts, err := each(cmd.Context(), s, inputs, func(in input) (int, error) {
				n := 0
				for _, set := range s.sets {
					n += set.matcher.Count(in.text)
				}
				return n, nil
			})
			if err != nil {
				return err
			}
			for i, n := range counts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%d\n", inputs[i].name, n)
			}
			return nil
		},
	}
}
