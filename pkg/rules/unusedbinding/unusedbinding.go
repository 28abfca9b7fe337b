// Package unusedbinding reports component inputs and outputs that no template
// in the project ever binds to.
package unusedbinding

import (
	"fmt"
	"strings"

	"github.com/kevinphelps/nglint/pkg/program"
	"github.com/kevinphelps/nglint/pkg/rule"
)

// Name identifies the rule in reports.
const Name = "no-unused-component-binding"

const twoWaySuffix = "Change"

// BindingType is the role of a binding.
type BindingType string

const (
	Input  BindingType = "input"
	Output BindingType = "output"
)

// Decorator names marking a property as a binding.
const (
	inputDecorator  = "Input"
	outputDecorator = "Output"
)

// Binding is a component property exposed to templates.
type Binding struct {
	Name   string
	Type   BindingType
	Member *program.Member
}

// FailureMessage builds the message reported for an unused binding.
func FailureMessage(selector, binding string, bindingType BindingType) string {
	return fmt.Sprintf("The '%s' %s on the '%s' component is not used. Remove it.", binding, bindingType, selector)
}

// BindingOf returns the binding declared by m, if any.
//
// When a member carries both markers the input interpretation wins. The
// public name is the first decorator argument when it is a string literal,
// the member name otherwise.
func BindingOf(m *program.Member) (Binding, bool) {
	bindingType := Input
	d := m.CalledDecorator(inputDecorator)
	if d == nil {
		bindingType = Output
		d = m.CalledDecorator(outputDecorator)
	}
	if d == nil {
		return Binding{}, false
	}

	name, ok := d.StringArg(0)
	if !ok {
		name = m.Name
	}

	return Binding{Name: name, Type: bindingType, Member: m}, true
}

// AttrNames returns every template attribute spelling that uses b.
func AttrNames(b Binding) []string {
	if b.Type == Input {
		return []string{b.Name, "[" + b.Name + "]", "[(" + b.Name + ")]"}
	}

	names := []string{"(" + b.Name + ")"}
	if stripped, ok := strings.CutSuffix(b.Name, twoWaySuffix); ok {
		names = append(names, "[("+stripped+")]")
	}
	return names
}

// Rule implements rule.Rule.
type Rule struct{}

var _ rule.Rule = (*Rule)(nil)

// New creates the rule.
func New() *Rule {
	return &Rule{}
}

// Name implements rule.Rule.
func (r *Rule) Name() string {
	return Name
}

// Description implements rule.Rule.
func (r *Rule) Description() string {
	return "Disallows component inputs and outputs that no template binds to."
}

// Apply implements rule.Rule.
func (r *Rule) Apply(prog *program.Program, sink rule.FailureSink) {
	for _, c := range prog.Components {
		for m := range c.Class.PropertyMembers() {
			b, ok := BindingOf(m)
			if !ok {
				continue
			}

			if !isUsed(prog, c.Selector, AttrNames(b)) {
				sink.AddFailureAtNode(m, FailureMessage(c.Selector, b.Name, b.Type))
			}
		}
	}
}

// isUsed searches every template of the project for an element named
// selector carrying one of attrNames. An empty selector matches nothing.
func isUsed(prog *program.Program, selector string, attrNames []string) bool {
	if selector == "" {
		return false
	}

	usesBinding := func(e *program.Element) bool {
		return e.Name == selector && e.HasAttr(attrNames...)
	}

	for _, c := range prog.Components {
		if program.ContainsMatchingElement(c.Template, usesBinding) {
			return true
		}
	}
	return false
}
