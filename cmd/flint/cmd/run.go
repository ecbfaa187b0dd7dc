package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/flint"
	"github.com/coregx/flint/internal/config"
)

// ruleSet is a loaded rule file and its compiled matcher.
type ruleSet struct {
	path    string
	rules   *config.Rules
	matcher *flint.Matcher
}

// input is one file (or stdin, named "-") and its contents.
type input struct {
	name string
	text string
}

// session holds everything a command needs after flag parsing.
type session struct {
	log   *zap.Logger
	sets  []ruleSet
	flags *globalFlags
}

func newSession(g *globalFlags) (*session, error) {
	if len(g.rules) == 0 {
		return nil, fmt.Errorf("at least one --rules file is required")
	}

	loaded := make([]*config.Rules, 0, len(g.rules))
	level := g.logLevel
	for _, path := range g.rules {
		r, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		if level == "" {
			level = r.LogLevel
		}
		loaded = append(loaded, r)
	}

	log, err := newLogger(level)
	if err != nil {
		return nil, err
	}

	var override *flint.MatchMode
	if g.mode != "" {
		mode, err := flint.ParseMatchMode(g.mode)
		if err != nil {
			return nil, fmt.Errorf("--mode: %w", err)
		}
		override = &mode
	}

	s := &session{log: log, flags: g}
	for i, r := range loaded {
		cfg, err := r.MatcherConfig()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.rules[i], err)
		}
		if override != nil {
			cfg.MatchMode = *override
		}
		m, err := matchers.Get(r.Patterns, cfg, flint.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.rules[i], err)
		}
		log.Debug("rules loaded",
			zap.String("path", g.rules[i]),
			zap.Stringer("matcher", m))
		s.sets = append(s.sets, ruleSet{path: g.rules[i], rules: r, matcher: m})
	}
	return s, nil
}

// readInputs reads every named file, or stdin when there are none.
func readInputs(names []string, stdin io.Reader) ([]input, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	inputs := make([]input, len(names))
	for i, name := range names {
		var data []byte
		var err error
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		inputs[i] = input{name: name, text: string(data)}
	}
	return inputs, nil
}

// each runs fn over every input with bounded concurrency and returns the
// per-input results in input order.
func each[T any](ctx context.Context, s *session, inputs []input, fn func(input) (T, error)) ([]T, error) {
	out := make([]T, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	if s.flags.workers > 0 {
		eg.SetLimit(s.flags.workers)
	}
	for i, in := range inputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn(in)
			if err != nil {
				s.log.Error("processing failed", zap.String("input", in.name), zap.Error(err))
				return fmt.Errorf("%s: %w", in.name, err)
			}
			s.log.Debug("processed", zap.String("input", in.name), zap.Int("bytes", len(in.text)))
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
