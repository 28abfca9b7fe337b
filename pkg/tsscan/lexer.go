package tsscan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokTemplate
	tokNumber
	tokRegex
	tokPunct
)

type token struct {
	kind tokenKind
	text string // raw source text
	// value is the unescaped content of a string literal or the raw content
	// of a template literal, starting at valueOffset.
	value       string
	offset      int
	end         int
	valueOffset int
	// newline is set when a line terminator separates the token from the
	// previous one.
	newline bool
}

func (t token) is(punct string) bool {
	return t.kind == tokPunct && t.text == punct
}

func (t token) isIdent(names ...string) bool {
	if t.kind != tokIdent {
		return false
	}
	for _, n := range names {
		if t.text == n {
			return true
		}
	}
	return false
}

// Multi-character punctuators the scanner needs to tell apart. '>' is never
// merged so that closing generic brackets stay balanced.
var punctuators = []string{"...", "===", "!==", "=>", "?.", "??", "&&", "||", "==", "!="}

// Keywords after which a slash starts a regular expression.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

type lexer struct {
	src     string
	pos     int
	tokens  []token
	newline bool
}

func tokenize(src string) []token {
	l := &lexer{src: src}
	for {
		l.skipTrivia()
		if l.pos >= len(l.src) {
			return l.tokens
		}
		l.scan()
	}
}

func (l *lexer) emit(t token) {
	t.newline = l.newline
	l.newline = false
	l.tokens = append(l.tokens, t)
}

func (l *lexer) skipTrivia() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.newline = true
			l.pos++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			l.pos++
		case strings.HasPrefix(l.src[l.pos:], "//"):
			i := strings.IndexByte(l.src[l.pos:], '\n')
			if i < 0 {
				l.pos = len(l.src)
				return
			}
			l.pos += i
		case strings.HasPrefix(l.src[l.pos:], "/*"):
			i := strings.Index(l.src[l.pos+2:], "*/")
			end := len(l.src)
			if i >= 0 {
				end = l.pos + 2 + i + 2
			}
			if strings.Contains(l.src[l.pos:end], "\n") {
				l.newline = true
			}
			l.pos = end
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if !unicode.IsSpace(r) && r != '\uFEFF' {
				return
			}
			if r == '\u2028' || r == '\u2029' {
				l.newline = true
			}
			l.pos += size
		default:
			return
		}
	}
}

func (l *lexer) scan() {
	start := l.pos
	c := l.src[l.pos]

	switch {
	case isIdentStart(c):
		l.pos++
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		l.emit(token{kind: tokIdent, text: l.src[start:l.pos], offset: start, end: l.pos})
	case isDigit(c) || c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]):
		for l.pos < len(l.src) && (isIdentPart(l.src[l.pos]) || l.src[l.pos] == '.') {
			l.pos++
		}
		l.emit(token{kind: tokNumber, text: l.src[start:l.pos], offset: start, end: l.pos})
	case c == '\'' || c == '"':
		value := l.scanString(c)
		l.emit(token{
			kind: tokString, text: l.src[start:l.pos], value: value,
			offset: start, end: l.pos, valueOffset: start + 1,
		})
	case c == '`':
		l.pos++
		l.scanTemplateTail()
		end := l.pos
		if end > start+1 && l.src[end-1] == '`' {
			end--
		}
		l.emit(token{
			kind: tokTemplate, text: l.src[start:l.pos], value: l.src[start+1 : end],
			offset: start, end: l.pos, valueOffset: start + 1,
		})
	case c == '/' && l.regexAllowed():
		l.scanRegex()
		l.emit(token{kind: tokRegex, text: l.src[start:l.pos], offset: start, end: l.pos})
	default:
		for _, p := range punctuators {
			if strings.HasPrefix(l.src[l.pos:], p) {
				l.pos += len(p)
				l.emit(token{kind: tokPunct, text: p, offset: start, end: l.pos})
				return
			}
		}
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
		l.emit(token{kind: tokPunct, text: l.src[start:l.pos], offset: start, end: l.pos})
	}
}

// scanString consumes a quoted literal and returns its unescaped value.
// Unterminated literals end at the line break.
func (l *lexer) scanString(quote byte) string {
	l.pos++
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == quote:
			l.pos++
			return b.String()
		case c == '\n':
			return b.String()
		case c == '\\' && l.pos+1 < len(l.src):
			l.pos++
			switch e := l.src[l.pos]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\n':
				// line continuation
			default:
				b.WriteByte(e)
			}
			l.pos++
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return b.String()
}

// scanTemplateTail consumes a template literal up to and including the
// closing backtick, skipping nested substitutions.
func (l *lexer) scanTemplateTail() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == '\\':
			l.pos += 2
		case c == '`':
			l.pos++
			return
		case strings.HasPrefix(l.src[l.pos:], "${"):
			l.pos += 2
			l.skipSubstitution()
		default:
			l.pos++
		}
	}
	if l.pos > len(l.src) {
		l.pos = len(l.src)
	}
}

func (l *lexer) skipSubstitution() {
	depth := 0
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; c {
		case '{':
			depth++
			l.pos++
		case '}':
			l.pos++
			if depth == 0 {
				return
			}
			depth--
		case '\'', '"':
			l.scanString(c)
		case '`':
			l.pos++
			l.scanTemplateTail()
		default:
			l.pos++
		}
	}
}

func (l *lexer) scanRegex() {
	l.pos++ // opening slash
	inClass := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\\':
			l.pos += 2
			continue
		case c == '\n':
			return
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			l.pos++
			for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
				l.pos++
			}
			return
		}
		l.pos++
	}
	if l.pos > len(l.src) {
		l.pos = len(l.src)
	}
}

func (l *lexer) regexAllowed() bool {
	if len(l.tokens) == 0 {
		return true
	}
	prev := l.tokens[len(l.tokens)-1]
	switch prev.kind {
	case tokPunct:
		return prev.text != ")" && prev.text != "]" && prev.text != "}"
	case tokIdent:
		return regexKeywords[prev.text]
	default:
		return false
	}
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$' || c == '#' || c >= utf8.RuneSelf
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) && c != '#' || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
