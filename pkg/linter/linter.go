// Package linter loads an Angular project and runs every rule against it.
package linter

import (
	"context"
	"fmt"
	"time"

	"github.com/kevinphelps/nglint/internal/base"
	"github.com/kevinphelps/nglint/pkg/config"
	"github.com/kevinphelps/nglint/pkg/dependencies"
	"github.com/kevinphelps/nglint/pkg/loader"
	"github.com/kevinphelps/nglint/pkg/program"
	"github.com/kevinphelps/nglint/pkg/reporter"
	"github.com/kevinphelps/nglint/pkg/rule"
	"golang.org/x/sync/errgroup"
)

// Linter runs rules over Angular projects.
type Linter interface {
	// Run loads the project file at projectPath, or the configured one when
	// empty, and lints it. The returned reporter is routed to the output
	// dependency; its Report method tells whether failures were found.
	Run(ctx context.Context, projectPath string) (*reporter.FailureReporter, error)
	// Lint applies every rule to an already loaded program.
	Lint(ctx context.Context, prog *program.Program) (*reporter.FailureReporter, error)
	// Load only builds the program of the project.
	Load(ctx context.Context, projectPath string) (*program.Program, error)
	// Rules returns the rules in reporting order.
	Rules() []rule.Rule
}

// NewLinterParams contains parameters for creating a new Linter instance.
type NewLinterParams struct {
	Dependencies *dependencies.Dependencies
	// Rules defaults to DefaultRules.
	Rules   []rule.Rule
	Verbose bool
}

type realLinter struct {
	*base.Base
	deps  *dependencies.Dependencies
	rules []rule.Rule
}

// New creates a new Linter instance.
func New(params NewLinterParams) (Linter, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	rules := params.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	return &realLinter{
		Base: base.NewBase(base.NewBaseParams{
			FS:      deps.FS,
			Logger:  deps.Logger,
			Verbose: params.Verbose,
		}),
		deps:  deps,
		rules: rules,
	}, nil
}

// Rules implements Linter.
func (l *realLinter) Rules() []rule.Rule {
	return l.rules
}

// Run implements Linter.
func (l *realLinter) Run(ctx context.Context, projectPath string) (*reporter.FailureReporter, error) {
	prog, err := l.Load(ctx, projectPath)
	if err != nil {
		return nil, err
	}
	return l.Lint(ctx, prog)
}

// Load implements Linter.
func (l *realLinter) Load(ctx context.Context, projectPath string) (*program.Program, error) {
	cfg, err := l.getConfig()
	if err != nil {
		return nil, err
	}
	if projectPath == "" {
		projectPath = cfg.Project
	}

	ld := l.deps.LoaderProvider(loader.NewLoaderParams{
		FS:          l.deps.FS,
		Logger:      l.deps.Logger,
		Exclude:     cfg.Exclude,
		Concurrency: cfg.Workers(),
		Verbose:     l.IsVerbose(),
	})
	return ld.Load(ctx, projectPath)
}

// Lint implements Linter. Every rule writes into its own reporter; the
// reporters are merged in rule order once all rules are done, so the output
// does not depend on scheduling.
func (l *realLinter) Lint(ctx context.Context, prog *program.Program) (*reporter.FailureReporter, error) {
	if prog == nil {
		return nil, ErrProgramMissing
	}

	cfg, err := l.getConfig()
	if err != nil {
		return nil, err
	}

	buffers := make([]*reporter.FailureReporter, len(l.rules))
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range l.rules {
		buffers[i] = reporter.New(reporter.WithRule(r.Name()))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return l.apply(r, prog, buffers[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := reporter.New(
		reporter.WithLogger(l.deps.Output),
		reporter.WithColor(cfg.Color),
	)
	for _, b := range buffers {
		result.Merge(b)
	}

	return result, nil
}

// apply runs one rule, turning a panic into an error.
func (l *realLinter) apply(r rule.Rule, prog *program.Program, sink rule.FailureSink) (err error) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s: %v", ErrRulePanicked, r.Name(), p)
		}
	}()

	r.Apply(prog, sink)
	l.VerbosePrint("Rule %s done in %s", r.Name(), time.Since(start).Round(time.Microsecond))
	return nil
}

func (l *realLinter) getConfig() (config.Config, error) {
	return l.deps.Config.GetConfigWithFallback()
}
