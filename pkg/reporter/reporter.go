// Package reporter accumulates the failures found by rules during one run.
package reporter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kevinphelps/nglint/pkg/logger"
	"github.com/kevinphelps/nglint/pkg/program"
)

// Failure is one finding reported by a rule.
type Failure struct {
	Rule    string
	Pos     program.Position
	Message string
}

// FailureReporter owns the ordered failures of a run.
type FailureReporter struct {
	rule     string
	failures []Failure
	logger   logger.Logger
	color    bool
}

// Option configures a FailureReporter.
type Option func(*FailureReporter)

// WithLogger routes Report output to l.
func WithLogger(l logger.Logger) Option {
	return func(r *FailureReporter) {
		r.logger = l
	}
}

// WithColor enables styled output.
func WithColor(color bool) Option {
	return func(r *FailureReporter) {
		r.color = color
	}
}

// WithRule tags every failure added through this reporter with the rule name.
func WithRule(name string) Option {
	return func(r *FailureReporter) {
		r.rule = name
	}
}

// New creates an empty reporter. Without WithLogger, Report renders nothing.
func New(opts ...Option) *FailureReporter {
	r := &FailureReporter{logger: logger.NewNoopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddFailureAtNode appends a failure anchored at node. Duplicates are kept.
func (r *FailureReporter) AddFailureAtNode(node program.Node, message string) {
	r.failures = append(r.failures, Failure{
		Rule:    r.rule,
		Pos:     node.Pos(),
		Message: message,
	})
}

// Merge appends the failures of other, preserving their order.
func (r *FailureReporter) Merge(other *FailureReporter) {
	if other == nil {
		return
	}
	r.failures = append(r.failures, other.failures...)
}

// Failures returns a copy of the accumulated failures in discovery order.
func (r *FailureReporter) Failures() []Failure {
	out := make([]Failure, len(r.failures))
	copy(out, r.failures)
	return out
}

// Len returns the number of accumulated failures.
func (r *FailureReporter) Len() int {
	return len(r.failures)
}

// Report renders every failure and returns whether any was recorded.
// Calling it twice renders twice but always returns the same result.
func (r *FailureReporter) Report() bool {
	location := lipgloss.NewStyle()
	ruleName := lipgloss.NewStyle()
	if r.color {
		location = location.Foreground(lipgloss.Color("6")).Underline(true)
		ruleName = ruleName.Faint(true)
	}

	for _, f := range r.failures {
		if f.Rule == "" {
			r.logger.Logf("%s - %s", location.Render(f.Pos.String()), f.Message)
			continue
		}
		r.logger.Logf("%s - %s %s", location.Render(f.Pos.String()), f.Message, ruleName.Render("("+f.Rule+")"))
	}

	return len(r.failures) > 0
}
