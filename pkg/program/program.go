// Package program describes the component model nglint rules are evaluated against.
//
// A Program is fully resolved before any rule sees it: every Component carries
// its class declaration, its selector and its parsed template. Rules only read
// the model; nothing in this package mutates it after construction.
package program

import "iter"

// Node is anything a failure can be anchored to.
type Node interface {
	Pos() Position
}

// Program is the set of components found in one project.
type Program struct {
	Components []*Component
}

// Component is one class decorated as a UI component.
type Component struct {
	// Selector activates the component in a template. It may be empty when
	// the decorator declares none, in which case no element ever matches it.
	Selector string
	Class    *Class
	Template *Template
}

// Class is the declaration node of a component.
type Class struct {
	Name    string
	NamePos Position
	Members []*Member
}

// Pos implements Node.
func (c *Class) Pos() Position {
	return c.NamePos
}

// PropertyMembers yields the direct property declarations of the class in
// source order. Methods, accessors and constructors are skipped.
func (c *Class) PropertyMembers() iter.Seq[*Member] {
	return func(yield func(*Member) bool) {
		if c == nil {
			return
		}
		for _, m := range c.Members {
			if m.Kind != PropertyMember {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// MemberKind classifies class members.
type MemberKind int

const (
	PropertyMember MemberKind = iota
	MethodMember
	GetAccessorMember
	SetAccessorMember
	ConstructorMember
)

// Member is a direct member of a class body.
type Member struct {
	Kind MemberKind
	// Name is the member name as written, quotes included for string names.
	Name       string
	NamePos    Position
	Decorators []*Decorator
}

// Pos implements Node. Members are anchored at their name.
func (m *Member) Pos() Position {
	return m.NamePos
}

// CalledDecorator returns the first decorator of the form @name(...).
func (m *Member) CalledDecorator(name string) *Decorator {
	for _, d := range m.Decorators {
		if d.Call && d.Name == name {
			return d
		}
	}
	return nil
}

// ArgKind tells string literal arguments apart from anything else.
type ArgKind int

const (
	ExprArg ArgKind = iota
	StringArg
)

// Arg is one decorator argument.
type Arg struct {
	Kind ArgKind
	// Text holds the unquoted value of a string literal, or the raw source
	// of any other expression.
	Text string
}

// Decorator is a @Name or @Name(args) construct attached to a declaration.
type Decorator struct {
	// Name is the decorator expression as written, e.g. "Input" or "core.Input".
	Name string
	Pos  Position
	// Call is true when the decorator is invoked, e.g. @Input().
	Call bool
	Args []Arg
}

// StringArg returns argument i when it is a string literal.
func (d *Decorator) StringArg(i int) (string, bool) {
	if i < 0 || i >= len(d.Args) || d.Args[i].Kind != StringArg {
		return "", false
	}
	return d.Args[i].Text, true
}
