// Package template parses component markup into program elements.
//
// The parser is deliberately tolerant: it never fails, keeps attribute names
// exactly as written ("[(ngModel)]", "(click)", "*ngIf") and ignores text,
// interpolations and comments. Unclosed elements stay open until the end of
// the input, unmatched closing tags are dropped.
package template

import (
	"strings"

	"github.com/kevinphelps/nglint/pkg/program"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Content of these elements is never markup.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "textarea": true, "title": true,
}

// Parse parses src. The markup starts at byte offset base of file, so that
// positions of inline templates point into the component source.
func Parse(file *program.File, src string, base int) *program.Template {
	return ParseMapped(file, src, func(i int) int { return base + i })
}

// ParseMapped parses src whose byte i lies at offset offsetOf(i) of file.
// It serves markup folded from several source literals.
func ParseMapped(file *program.File, src string, offsetOf func(int) int) *program.Template {
	p := &parser{src: src, offsetOf: offsetOf, file: file}
	p.parse()
	return &program.Template{Source: file.Name(), Roots: p.roots}
}

type parser struct {
	src      string
	pos      int
	offsetOf func(int) int
	file     *program.File
	roots    []*program.Element
	stack    []*program.Element
}

func (p *parser) parse() {
	for p.pos < len(p.src) {
		i := strings.IndexAny(p.src[p.pos:], "<{")
		if i < 0 {
			return
		}
		p.pos += i
		rest := p.src[p.pos:]

		switch {
		case strings.HasPrefix(rest, "{{"):
			p.skipPast("}}")
		case rest[0] == '{':
			p.pos++
		case strings.HasPrefix(rest, "<!--"):
			p.skipPast("-->")
		case strings.HasPrefix(rest, "<!"), strings.HasPrefix(rest, "<?"):
			p.skipPast(">")
		case strings.HasPrefix(rest, "</"):
			p.closeTag()
		case len(rest) > 1 && isNameStart(rest[1]):
			p.openTag()
		default:
			p.pos++
		}
	}
}

func (p *parser) openTag() {
	p.pos++ // <
	nameStart := p.pos
	name := p.tagName()

	e := &program.Element{
		Name:    name,
		NamePos: p.position(nameStart),
	}

	selfClosing := false
loop:
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			break
		}
		switch {
		case p.src[p.pos] == '>':
			p.pos++
			break loop
		case strings.HasPrefix(p.src[p.pos:], "/>"):
			p.pos += 2
			selfClosing = true
			break loop
		case p.src[p.pos] == '/':
			p.pos++
		default:
			p.attr(e)
		}
	}

	p.add(e)

	name = strings.ToLower(name)
	switch {
	case selfClosing, voidElements[name]:
	case rawTextElements[name]:
		p.skipRawText(name)
	default:
		p.stack = append(p.stack, e)
	}
}

func (p *parser) attr(e *program.Element) {
	nameStart := p.pos
	for p.pos < len(p.src) && !isAttrNameEnd(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == nameStart {
		// A stray quote or '=' where a name was expected.
		p.pos++
		return
	}

	a := program.Attr{
		Name: p.src[nameStart:p.pos],
		Pos:  p.position(nameStart),
	}

	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '=' {
		p.pos++
		p.skipSpace()
		a.Value = p.value()
	}

	e.Attrs = append(e.Attrs, a)
}

func (p *parser) value() string {
	if p.pos >= len(p.src) {
		return ""
	}

	if q := p.src[p.pos]; q == '"' || q == '\'' {
		start := p.pos + 1
		end := strings.IndexByte(p.src[start:], q)
		if end < 0 {
			p.pos = len(p.src)
			return p.src[start:]
		}
		p.pos = start + end + 1
		return p.src[start : start+end]
	}

	start := p.pos
	for p.pos < len(p.src) && !isSpace(p.src[p.pos]) && p.src[p.pos] != '>' {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) closeTag() {
	p.pos += 2 // </
	name := p.tagName()
	p.skipPast(">")

	for i := len(p.stack) - 1; i >= 0; i-- {
		if strings.EqualFold(p.stack[i].Name, name) {
			p.stack = p.stack[:i]
			return
		}
	}
}

// skipRawText moves to the closing tag of a raw text element.
func (p *parser) skipRawText(name string) {
	closing := "</" + name
	for {
		i := strings.Index(p.src[p.pos:], "</")
		if i < 0 {
			p.pos = len(p.src)
			return
		}
		p.pos += i
		if len(p.src)-p.pos >= len(closing) && strings.EqualFold(p.src[p.pos:p.pos+len(closing)], closing) {
			p.skipPast(">")
			return
		}
		p.pos += 2
	}
}

func (p *parser) tagName() string {
	start := p.pos
	for p.pos < len(p.src) && !isTagNameEnd(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) add(e *program.Element) {
	if n := len(p.stack); n > 0 {
		parent := p.stack[n-1]
		parent.Children = append(parent.Children, e)
		return
	}
	p.roots = append(p.roots, e)
}

func (p *parser) skipPast(s string) {
	i := strings.Index(p.src[p.pos:], s)
	if i < 0 {
		p.pos = len(p.src)
		return
	}
	p.pos += i + len(s)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) position(offset int) program.Position {
	return p.file.Position(p.offsetOf(offset))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == ':'
}

func isTagNameEnd(c byte) bool {
	return isSpace(c) || c == '/' || c == '>' || c == '<' || c == '"' || c == '\'' || c == '='
}

func isAttrNameEnd(c byte) bool {
	return isSpace(c) || c == '=' || c == '>' || c == '/' || c == '"' || c == '\''
}
