// Package tsscan extracts component declarations from TypeScript sources.
//
// It is not a TypeScript parser. It tokenizes a file, finds decorated class
// declarations and records what rules need: the @Component metadata
// (selector, inline template, templateUrl) and every direct class member with
// its decorators. Expressions, types and bodies are skipped by balancing
// brackets.
package tsscan

import (
	"fmt"
	"strings"

	"github.com/kevinphelps/nglint/pkg/program"
)

const componentDecorator = "Component"

// ComponentDecl is a class decorated with @Component(...).
type ComponentDecl struct {
	Class *program.Class
	// Selector is empty when the metadata declares none or declares it with
	// anything other than a literal.
	Selector string
	// Template is set for inline templates.
	Template *InlineTemplate
	// TemplateURL is set when the markup lives in a separate file.
	TemplateURL string
	// UnresolvedTemplate is set when the metadata has a template property
	// that is neither a literal nor a "+" chain of literals.
	UnresolvedTemplate bool
}

// InlineTemplate is markup embedded in the component metadata. Literals
// joined with "+" are folded into one Content.
type InlineTemplate struct {
	Content string
	// Offset is the byte offset of Content within the source file.
	Offset int
	// parts maps the start of every folded literal in Content to its offset
	// in the source. Empty for a single literal.
	parts []part
}

type part struct {
	start, offset int
}

// SourceOffset returns the source offset of byte i of Content.
func (t *InlineTemplate) SourceOffset(i int) int {
	if len(t.parts) == 0 {
		return t.Offset + i
	}
	p := t.parts[0]
	for _, q := range t.parts[1:] {
		if q.start > i {
			break
		}
		p = q
	}
	return p.offset + i - p.start
}

// Scan returns the components declared in src, in source order.
func Scan(file *program.File, src []byte) ([]*ComponentDecl, error) {
	s := &scanner{file: file, src: string(src)}
	s.toks = tokenize(s.src)
	return s.scan()
}

type scanner struct {
	file *program.File
	src  string
	toks []token
	i    int
}

// argRange is a half-open range of token indices.
type argRange struct {
	start, end int
}

type decorator struct {
	*program.Decorator
	args []argRange
}

// Modifiers that may precede a class declaration.
var classModifiers = map[string]bool{
	"export": true, "default": true, "abstract": true, "declare": true,
}

// Modifiers that may precede a class member name.
var memberModifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "readonly": true,
	"static": true, "declare": true, "override": true, "abstract": true,
	"async": true, "accessor": true,
}

func (s *scanner) peek(n int) token {
	if j := s.i + n; j < 0 || j >= len(s.toks) {
		return token{kind: tokEOF, offset: len(s.src), end: len(s.src)}
	}
	return s.toks[s.i+n]
}

func (s *scanner) next() token {
	t := s.peek(0)
	if s.i < len(s.toks) {
		s.i++
	}
	return t
}

func (s *scanner) scan() ([]*ComponentDecl, error) {
	var (
		out        []*ComponentDecl
		decorators []*decorator
	)

	for s.peek(0).kind != tokEOF {
		t := s.peek(0)
		switch {
		case t.is("@") && s.peek(1).kind == tokIdent:
			decorators = append(decorators, s.decorator())
		case t.isIdent("class") && s.startsClass():
			class, err := s.class()
			if err != nil {
				return nil, err
			}
			if decl := componentOf(s, class, decorators); decl != nil {
				out = append(out, decl)
			}
			decorators = nil
		case t.kind == tokIdent && classModifiers[t.text]:
			s.i++
		default:
			decorators = nil
			s.i++
		}
	}

	return out, nil
}

// startsClass tells the class keyword apart from a property named class.
func (s *scanner) startsClass() bool {
	if prev := s.peek(-1); prev.is(".") || prev.is("?.") {
		return false
	}
	next := s.peek(1)
	return next.kind == tokIdent || next.is("{")
}

// decorator consumes @name, @a.b.name or @name(args).
func (s *scanner) decorator() *decorator {
	at := s.next()
	name := s.next().text
	for s.peek(0).is(".") && s.peek(1).kind == tokIdent {
		s.i++
		name += "." + s.next().text
	}

	d := &decorator{Decorator: &program.Decorator{Name: name, Pos: s.file.Position(at.offset)}}
	if s.peek(0).is("(") {
		d.Call = true
		d.args = s.arguments()
		for _, r := range d.args {
			d.Args = append(d.Args, s.arg(r))
		}
	}
	return d
}

// arguments consumes a parenthesized list and returns the token range of
// every top-level argument.
func (s *scanner) arguments() []argRange {
	s.i++ // (
	var args []argRange
	start, depth := s.i, 0

	for {
		t := s.peek(0)
		switch {
		case t.kind == tokEOF:
			if s.i > start {
				args = append(args, argRange{start, s.i})
			}
			return args
		case isOpen(t):
			depth++
		case isClose(t):
			if depth == 0 {
				if s.i > start {
					args = append(args, argRange{start, s.i})
				}
				s.i++
				return args
			}
			depth--
		case t.is(",") && depth == 0:
			args = append(args, argRange{start, s.i})
			start = s.i + 1
		}
		s.i++
	}
}

func (s *scanner) arg(r argRange) program.Arg {
	if r.end-r.start == 1 && s.toks[r.start].kind == tokString {
		return program.Arg{Kind: program.StringArg, Text: s.toks[r.start].value}
	}
	return program.Arg{Kind: program.ExprArg, Text: s.src[s.toks[r.start].offset:s.toks[r.end-1].end]}
}

// class consumes a class declaration including its body.
func (s *scanner) class() (*program.Class, error) {
	classTok := s.next()
	class := &program.Class{NamePos: s.file.Position(classTok.offset)}

	if t := s.peek(0); t.kind == tokIdent && !t.isIdent("extends", "implements") {
		class.Name = t.text
		class.NamePos = s.file.Position(t.offset)
		s.i++
	}

	if err := s.skipHeritage(); err != nil {
		return nil, fmt.Errorf("%w: class %s at %s", err, class.Name, class.NamePos)
	}

	members, err := s.classBody()
	if err != nil {
		return nil, fmt.Errorf("%w: class %s at %s", err, class.Name, class.NamePos)
	}
	class.Members = members

	return class, nil
}

// skipHeritage moves to the opening brace of the class body, skipping type
// parameters, extends and implements clauses.
func (s *scanner) skipHeritage() error {
	angle, depth := 0, 0
	for {
		t := s.peek(0)
		switch {
		case t.kind == tokEOF:
			return ErrUnterminatedClass
		case t.is("{") && angle == 0 && depth == 0:
			return nil
		case t.is("<"):
			angle++
		case t.is(">") && angle > 0:
			angle--
		case isOpen(t):
			depth++
		case isClose(t) && depth > 0:
			depth--
		}
		s.i++
	}
}

func (s *scanner) classBody() ([]*program.Member, error) {
	s.i++ // {
	var (
		members    []*program.Member
		decorators []*decorator
	)

	for {
		t := s.peek(0)
		switch {
		case t.kind == tokEOF:
			return nil, ErrUnterminatedClass
		case t.is("}"):
			s.i++
			return members, nil
		case t.is(";") || t.is(","):
			s.i++
		case t.is("@") && s.peek(1).kind == tokIdent:
			decorators = append(decorators, s.decorator())
		default:
			if m := s.member(decorators); m != nil {
				members = append(members, m)
			}
			decorators = nil
		}
	}
}

func (s *scanner) member(decorators []*decorator) *program.Member {
	for t := s.peek(0); t.kind == tokIdent && memberModifiers[t.text] && startsMemberName(s.peek(1)); t = s.peek(0) {
		s.i++
	}

	m := &program.Member{Kind: program.PropertyMember}
	for _, d := range decorators {
		m.Decorators = append(m.Decorators, d.Decorator)
	}

	switch t := s.peek(0); {
	case t.isIdent("get") && startsMemberName(s.peek(1)) && !s.peek(1).is("*"):
		m.Kind = program.GetAccessorMember
		s.i++
	case t.isIdent("set") && startsMemberName(s.peek(1)) && !s.peek(1).is("*"):
		m.Kind = program.SetAccessorMember
		s.i++
	case t.is("*"):
		m.Kind = program.MethodMember
		s.i++
	}

	nameTok := s.peek(0)
	switch {
	case nameTok.kind == tokIdent || nameTok.kind == tokString || nameTok.kind == tokNumber:
		m.Name = nameTok.text
		s.i++
	case nameTok.is("["):
		s.skipBalanced()
		m.Name = s.src[nameTok.offset:s.toks[s.i-1].end]
	default:
		// Not a member: skip the token so the body scan makes progress.
		s.i++
		return nil
	}
	m.NamePos = s.file.Position(nameTok.offset)

	if m.Kind == program.PropertyMember && nameTok.isIdent("constructor") && s.peek(0).is("(") {
		m.Kind = program.ConstructorMember
	}
	if s.peek(0).is("?") || s.peek(0).is("!") {
		s.i++
	}

	switch {
	case s.peek(0).is("(") || s.peek(0).is("<"):
		if m.Kind == program.PropertyMember {
			m.Kind = program.MethodMember
		}
		s.skipFunction()
	case m.Kind != program.PropertyMember:
		s.skipFunction()
	default:
		s.skipProperty()
	}

	return m
}

// skipFunction skips type parameters, parameters, return type and body.
func (s *scanner) skipFunction() {
	if s.peek(0).is("<") {
		s.skipAngle()
	}
	if s.peek(0).is("(") {
		s.skipBalanced()
	}

	if s.peek(0).is(":") {
		s.i++
		if s.peek(0).is("{") {
			// object type literal as return type
			s.skipBalanced()
		}
	}

	prev := s.peek(-1)
	angle := 0
	for {
		t := s.peek(0)
		switch {
		case t.kind == tokEOF, t.is("}"):
			return
		case t.is(";"):
			s.i++
			return
		case t.is("<"):
			angle++
			s.i++
		case t.is(">") && angle > 0:
			angle--
			s.i++
		case t.is("{") && angle == 0:
			s.skipBalanced()
			return
		case t.newline && angle == 0 && !continuesAfter(prev) && !continuesBefore(t):
			// overload or abstract signature without a semicolon
			return
		case isOpen(t):
			s.skipBalanced()
		default:
			s.i++
		}
		prev = s.peek(-1)
	}
}

// skipProperty skips the type annotation and initializer of a property. The
// declaration ends at a semicolon, at the end of the class body or at a line
// break where automatic semicolon insertion applies.
func (s *scanner) skipProperty() {
	prev := s.peek(-1)
	for {
		t := s.peek(0)
		switch {
		case t.kind == tokEOF, t.is("}"):
			return
		case t.is(";"):
			s.i++
			return
		case t.newline && !continuesAfter(prev) && !continuesBefore(t):
			return
		case isOpen(t):
			s.skipBalanced()
		default:
			s.i++
		}
		prev = s.peek(-1)
	}
}

// skipBalanced consumes an opening bracket and everything up to its match.
func (s *scanner) skipBalanced() {
	depth := 0
	for {
		t := s.next()
		switch {
		case t.kind == tokEOF:
			return
		case isOpen(t):
			depth++
		case isClose(t):
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

func (s *scanner) skipAngle() {
	depth := 0
	for {
		t := s.next()
		switch {
		case t.kind == tokEOF:
			return
		case t.is("<"):
			depth++
		case t.is(">"):
			depth--
			if depth <= 0 {
				return
			}
		case t.is("{") || t.is("("), t.is("["):
			s.i--
			s.skipBalanced()
		}
	}
}

// componentOf builds the component declaration of class when one of the
// decorators is @Component(...).
func componentOf(s *scanner, class *program.Class, decorators []*decorator) *ComponentDecl {
	for _, d := range decorators {
		if !d.Call || d.Name != componentDecorator {
			continue
		}

		decl := &ComponentDecl{Class: class}
		if len(d.args) > 0 {
			s.metadata(d.args[0], decl)
		}
		return decl
	}
	return nil
}

// metadata reads the literal selector, template and templateUrl properties
// of a component metadata object.
func (s *scanner) metadata(r argRange, decl *ComponentDecl) {
	toks := s.toks[r.start:r.end]
	if len(toks) == 0 || !toks[0].is("{") {
		return
	}

	depth := 0
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch {
		case isOpen(t):
			depth++
			continue
		case isClose(t):
			depth--
			continue
		}
		if depth != 1 || i+3 >= len(toks) || !toks[i+1].is(":") {
			continue
		}

		// The value runs up to the next "," or "}". A bracket ends the scan:
		// such a value is never a literal and the depth tracking takes over.
		j := i + 2
		for j < len(toks) && !toks[j].is(",") && !toks[j].is("}") && !isOpen(toks[j]) {
			j++
		}
		if j >= len(toks) || isOpen(toks[j]) {
			if propertyKey(t) == "template" {
				decl.UnresolvedTemplate = true
			}
			i = j - 1
			continue
		}
		lit, ok := foldLiterals(toks[i+2 : j])

		switch propertyKey(t) {
		case "selector":
			if ok {
				decl.Selector = lit.Content
			}
		case "template":
			if ok {
				decl.Template = lit
			} else {
				decl.UnresolvedTemplate = true
			}
		case "templateUrl":
			if ok {
				decl.TemplateURL = lit.Content
			}
		}
		i = j - 1
	}
}

// foldLiterals evaluates a string or template literal, or a chain of them
// joined with "+".
func foldLiterals(toks []token) (*InlineTemplate, bool) {
	if len(toks)%2 == 0 {
		return nil, false
	}

	var b strings.Builder
	lit := &InlineTemplate{}
	for k, t := range toks {
		if k%2 == 1 {
			if !t.is("+") {
				return nil, false
			}
			continue
		}
		if !isLiteral(t) {
			return nil, false
		}
		lit.parts = append(lit.parts, part{start: b.Len(), offset: t.valueOffset})
		b.WriteString(t.value)
	}

	lit.Content = b.String()
	lit.Offset = lit.parts[0].offset
	if len(lit.parts) == 1 {
		lit.parts = nil
	}
	return lit, true
}

func propertyKey(t token) string {
	switch t.kind {
	case tokIdent:
		return t.text
	case tokString:
		return t.value
	default:
		return ""
	}
}

func isLiteral(t token) bool {
	return t.kind == tokString || t.kind == tokTemplate
}

func isOpen(t token) bool {
	return t.is("(") || t.is("[") || t.is("{")
}

func isClose(t token) bool {
	return t.is(")") || t.is("]") || t.is("}")
}

func startsMemberName(t token) bool {
	switch t.kind {
	case tokIdent, tokString, tokNumber:
		return true
	case tokPunct:
		return t.text == "[" || t.text == "*"
	default:
		return false
	}
}

// Tokens after which a declaration always continues on the next line.
var continuationAfter = map[string]bool{
	"=": true, ":": true, "|": true, "&": true, ",": true, ".": true, "?.": true,
	"=>": true, "(": true, "[": true, "{": true, "<": true, "+": true, "-": true,
	"*": true, "/": true, "%": true, "!": true, "?": true, "??": true, "&&": true,
	"||": true, "==": true, "===": true, "!=": true, "!==": true, "~": true, "^": true,
}

var continuationKeywords = map[string]bool{
	"new": true, "typeof": true, "keyof": true, "extends": true, "as": true,
	"in": true, "instanceof": true, "is": true, "readonly": true, "satisfies": true,
}

// Tokens that continue the previous line when they start a line.
var continuationBefore = map[string]bool{
	".": true, "?.": true, "=": true, "=>": true, "|": true, "&": true, ":": true,
	"?": true, ",": true, ")": true, "]": true, "(": true, "+": true, "-": true,
	"*": true, "/": true, "%": true, "&&": true, "||": true, "??": true,
	"==": true, "===": true, "!=": true, "!==": true, ">": true, "<": true,
}

func continuesAfter(t token) bool {
	switch t.kind {
	case tokPunct:
		return continuationAfter[t.text]
	case tokIdent:
		return continuationKeywords[t.text]
	default:
		return false
	}
}

func continuesBefore(t token) bool {
	switch t.kind {
	case tokPunct:
		return continuationBefore[t.text]
	case tokIdent:
		return t.text == "as" || t.text == "satisfies"
	default:
		return false
	}
}
