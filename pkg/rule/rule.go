// Package rule defines the contract every nglint analysis implements.
package rule

import "github.com/kevinphelps/nglint/pkg/program"

// FailureSink receives the findings of a rule.
type FailureSink interface {
	AddFailureAtNode(node program.Node, message string)
}

// Rule inspects a fully resolved program and reports zero or more failures.
//
// Apply must not mutate the program and must not depend on the side effects
// of other rules: rules may run in any order, or concurrently against the same
// program with one sink each.
type Rule interface {
	// Name returns the rule identifier, e.g. "no-unused-component-binding".
	Name() string
	// Description returns a one-line summary of what the rule checks.
	Description() string
	// Apply reports the failures found in prog to sink.
	Apply(prog *program.Program, sink FailureSink)
}
