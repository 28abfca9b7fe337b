package linter

import (
	"github.com/kevinphelps/nglint/pkg/rule"
	"github.com/kevinphelps/nglint/pkg/rules/unusedbinding"
)

// DefaultRules returns the rules enabled when none are given, in reporting order.
func DefaultRules() []rule.Rule {
	return []rule.Rule{
		unusedbinding.New(),
	}
}
