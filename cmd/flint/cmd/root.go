package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coregx/flint/cache"
)

type globalFlags struct {
	rules    []string
	mode     string
	logLevel string
	workers  int
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "flint",
		Short:         "Multi-pattern literal search and replace",
		Long:          "Find, count or replace every occurrence of a set of literal patterns in one pass per file.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := root.PersistentFlags()
	f.StringArrayVarP(&g.rules, "rules", "r", nil, "Rule file (YAML); may be repeated")
	f.StringVarP(&g.mode, "mode", "m", "", "Override the rule files' match mode: fuzzy or exact")
	f.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from rule file, else warn)")
	f.IntVarP(&g.workers, "workers", "j", 4, "Files processed concurrently")

	root.AddCommand(newFindCmd(g))
	root.AddCommand(newCountCmd(g))
	root.AddCommand(newReplaceCmd(g))
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// matchers is shared by every command so identical rule files compile once.
var matchers = mustCache()

func mustCache() *cache.Cache {
	c, err := cache.New(cache.DefaultSize)
	if err != nil {
		panic(err)
	}
	return c
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "warn"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
