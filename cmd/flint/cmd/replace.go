package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newReplaceCmd(g *globalFlags) *cobra.Command {
	var inPlace bool
	c := &cobra.Command{
		Use:   "replace [file ...]",
		Short: "Replace matches using the rule files' replacement or replacements",
		Long: "Apply every rule file in order. A rule file with `replacement` substitutes one string for every match; " +
			"one with `replacements` substitutes by pattern. Output goes to stdout unless --in-place is set.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(g)
			if err != nil {
				return err
			}
			defer s.log.Sync() //nolint:errcheck

			for _, set := range s.sets {
				if !set.rules.HasReplacement() {
					return fmt.Errorf("%s: no replacement or replacements defined", set.path)
				}
			}
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if inPlace {
				for _, in := range inputs {
					if in.name == "-" {
						return fmt.Errorf("--in-place cannot be used with stdin")
					}
				}
			}

			results, err := each(cmd.Context(), s, inputs, func(in input) (string, error) {
				text := in.text
				for _, set := range s.sets {
					if set.rules.Replacements != nil {
						out, err := set.matcher.ReplaceEach(text, set.rules.Replacements)
						if err != nil {
							return "", err
						}
						text = out
						continue
					}
					text = set.matcher.Replace(text, *set.rules.Replacement)
				}
				return text, nil
			})
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), inputs, results, inPlace)
		},
	}
	c.Flags().BoolVarP(&inPlace, "in-place", "i", false, "Rewrite files instead of printing")
	return c
}

func writeResults(w io.Writer, inputs []input, results []string, inPlace bool) error {
	for i, in := range inputs {
		if !inPlace {
			if _, err := io.WriteString(w, results[i]); err != nil {
				return err
			}
			continue
		}
		if results[i] == in.text {
			continue
		}
		info, err := os.Stat(in.name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(in.name, []byte(results[i]), info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", in.name, err)
		}
	}
	return nil
}
