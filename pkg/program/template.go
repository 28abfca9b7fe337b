package program

import "iter"

// Template is the parsed markup of a component.
type Template struct {
	// Source is the file the markup was read from. Inline templates point at
	// the component's own source file.
	Source string
	Roots  []*Element
}

// Element is one tag of a template.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	NamePos  Position
}

// Pos implements Node.
func (e *Element) Pos() Position {
	return e.NamePos
}

// Attr is an attribute exactly as written, e.g. "[(value)]" or "(click)".
type Attr struct {
	Name  string
	Value string
	Pos   Position
}

// HasAttr reports whether the element carries an attribute named one of names.
func (e *Element) HasAttr(names ...string) bool {
	for _, a := range e.Attrs {
		for _, n := range names {
			if a.Name == n {
				return true
			}
		}
	}
	return false
}

// Elements yields every element of the template in document order.
func (t *Template) Elements() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if t == nil {
			return
		}
		walk(t.Roots, yield)
	}
}

func walk(elements []*Element, yield func(*Element) bool) bool {
	for _, e := range elements {
		if !yield(e) {
			return false
		}
		if !walk(e.Children, yield) {
			return false
		}
	}
	return true
}

// ContainsMatchingElement reports whether any element of t satisfies match.
// A nil or empty template contains nothing.
func ContainsMatchingElement(t *Template, match func(*Element) bool) bool {
	for e := range t.Elements() {
		if match(e) {
			return true
		}
	}
	return false
}
