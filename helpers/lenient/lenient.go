// Package lenient repairs loosely written JSON into strict JSON text.
//
// It accepts what old save files contain: comments, unquoted names and
// values, single quoted strings, "=" and "=>" name separators, ";" element
// separators, implicit nulls in arrays and the ")]}'" non-execute prefix.
// Whitespace between tokens is kept as written.
package lenient

import (
	"fmt"
	"regexp"
	"strings"
)

type Type int

const (
	TypeNull Type = iota
	TypeObject
	TypeArray
	TypeString
	TypeNumber
	TypeBool
)

func (t Type) String() string {
	switch t {
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	}
	return "null"
}

// Result is the repaired text and the kind of its top level value.
type Result struct {
	Text string
	Type Type
}

type ParseError struct {
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lenient: %s at offset %d", e.Reason, e.Pos)
}

const nonExecutePrefix = ")]}'\n"

var numberRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Fix parses text leniently and returns it as strict JSON. Exactly one top
// level value is accepted.
func Fix(text string) (Result, error) {
	f := &fixer{src: text}
	if rest := strings.TrimLeft(text, " \t\r\n\f"); strings.HasPrefix(rest, nonExecutePrefix) {
		f.pos = len(text) - len(rest) + len(nonExecutePrefix)
	}
	if err := f.space(); err != nil {
		return Result{}, err
	}
	if f.eof() {
		return Result{}, f.fail("empty document")
	}
	typ, err := f.value()
	if err != nil {
		return Result{}, err
	}
	if err := f.space(); err != nil {
		return Result{}, err
	}
	if !f.eof() {
		return Result{}, f.fail("trailing content")
	}
	return Result{Text: strings.TrimSpace(f.out.String()), Type: typ}, nil
}

type fixer struct {
	src string
	pos int
	out strings.Builder
}

func (f *fixer) eof() bool { return f.pos >= len(f.src) }

func (f *fixer) peek() byte {
	if f.eof() {
		return 0
	}
	return f.src[f.pos]
}

func (f *fixer) fail(reason string) *ParseError {
	return &ParseError{Pos: f.pos, Reason: reason}
}

// space copies whitespace and drops comments.
func (f *fixer) space() error {
	for !f.eof() {
		c := f.src[f.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			f.out.WriteByte(c)
			f.pos++
		case c == '#':
			f.skipLine()
		case c == '/' && strings.HasPrefix(f.src[f.pos:], "//"):
			f.skipLine()
		case c == '/' && strings.HasPrefix(f.src[f.pos:], "/*"):
			end := strings.Index(f.src[f.pos+2:], "*/")
			if end < 0 {
				return f.fail("unterminated comment")
			}
			f.pos += end + 4
		default:
			return nil
		}
	}
	return nil
}

func (f *fixer) skipLine() {
	if i := strings.IndexAny(f.src[f.pos:], "\r\n"); i >= 0 {
		f.pos += i
		return
	}
	f.pos = len(f.src)
}

func (f *fixer) value() (Type, error) {
	switch f.peek() {
	case '{':
		return TypeObject, f.object()
	case '[':
		return TypeArray, f.array()
	case '"', '\'':
		return TypeString, f.quoted()
	}
	return f.literal()
}

func (f *fixer) object() error {
	f.out.WriteByte('{')
	f.pos++
	if err := f.space(); err != nil {
		return err
	}
	if f.peek() == '}' {
		f.out.WriteByte('}')
		f.pos++
		return nil
	}
	for {
		if err := f.name(); err != nil {
			return err
		}
		if err := f.space(); err != nil {
			return err
		}
		switch f.peek() {
		case ':':
			f.pos++
		case '=':
			f.pos++
			if f.peek() == '>' {
				f.pos++
			}
		default:
			return f.fail("expected ':'")
		}
		f.out.WriteByte(':')
		if err := f.space(); err != nil {
			return err
		}
		if f.eof() {
			return f.fail("unexpected end of input")
		}
		if _, err := f.value(); err != nil {
			return err
		}
		if err := f.space(); err != nil {
			return err
		}
		switch f.peek() {
		case ',', ';':
			f.out.WriteByte(',')
			f.pos++
			if err := f.space(); err != nil {
				return err
			}
			if f.peek() == '}' {
				return f.fail("trailing comma in object")
			}
		case '}':
			f.out.WriteByte('}')
			f.pos++
			return nil
		default:
			if f.eof() {
				return f.fail("unexpected end of input")
			}
			return f.fail("expected ',' or '}'")
		}
	}
}

func (f *fixer) name() error {
	switch f.peek() {
	case '"', '\'':
		return f.quoted()
	}
	lit := f.readLiteral()
	if lit == "" {
		if f.eof() {
			return f.fail("unexpected end of input")
		}
		return f.fail("expected name")
	}
	writeQuoted(&f.out, lit)
	return nil
}

func (f *fixer) array() error {
	f.out.WriteByte('[')
	f.pos++
	if err := f.space(); err != nil {
		return err
	}
	if f.peek() == ']' {
		f.out.WriteByte(']')
		f.pos++
		return nil
	}
	for {
		switch c := f.peek(); {
		case c == ',' || c == ';' || c == ']':
			f.out.WriteString("null")
		case f.eof():
			return f.fail("unexpected end of input")
		default:
			if _, err := f.value(); err != nil {
				return err
			}
		}
		if err := f.space(); err != nil {
			return err
		}
		switch f.peek() {
		case ',', ';':
			f.out.WriteByte(',')
			f.pos++
			if err := f.space(); err != nil {
				return err
			}
		case ']':
			f.out.WriteByte(']')
			f.pos++
			return nil
		default:
			if f.eof() {
				return f.fail("unexpected end of input")
			}
			return f.fail("expected ',' or ']'")
		}
	}
}

// quoted copies a single or double quoted string as a double quoted one.
func (f *fixer) quoted() error {
	quote := f.src[f.pos]
	start := f.pos
	f.pos++
	f.out.WriteByte('"')
	for !f.eof() {
		c := f.src[f.pos]
		switch {
		case c == quote:
			f.pos++
			f.out.WriteByte('"')
			return nil
		case c == '\\':
			if err := f.escape(); err != nil {
				return err
			}
		case c == '"':
			f.out.WriteString(`\"`)
			f.pos++
		case c < 0x20:
			fmt.Fprintf(&f.out, `\u%04x`, c)
			f.pos++
		default:
			f.out.WriteByte(c)
			f.pos++
		}
	}
	f.pos = start
	return f.fail("unterminated string")
}

func (f *fixer) escape() error {
	if f.pos+1 >= len(f.src) {
		return f.fail("unterminated string")
	}
	c := f.src[f.pos+1]
	switch c {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		f.out.WriteByte('\\')
		f.out.WriteByte(c)
		f.pos += 2
	case '\'':
		f.out.WriteByte('\'')
		f.pos += 2
	case '\n':
		f.out.WriteString(`\n`)
		f.pos += 2
	case 'u':
		if f.pos+6 > len(f.src) || !isHex(f.src[f.pos+2:f.pos+6]) {
			return f.fail("invalid unicode escape")
		}
		f.out.WriteString(f.src[f.pos : f.pos+6])
		f.pos += 6
	default:
		return f.fail("invalid escape sequence")
	}
	return nil
}

func (f *fixer) literal() (Type, error) {
	lit := f.readLiteral()
	if lit == "" {
		return TypeNull, f.fail(fmt.Sprintf("unexpected character %q", f.peek()))
	}
	switch lower := strings.ToLower(lit); lower {
	case "true", "false":
		f.out.WriteString(lower)
		return TypeBool, nil
	case "null":
		f.out.WriteString(lower)
		return TypeNull, nil
	}
	if numberRe.MatchString(lit) {
		f.out.WriteString(lit)
		return TypeNumber, nil
	}
	writeQuoted(&f.out, lit)
	return TypeString, nil
}

func (f *fixer) readLiteral() string {
	start := f.pos
	for !f.eof() && !isTerminator(f.src[f.pos]) {
		f.pos++
	}
	return f.src[start:f.pos]
}

func isTerminator(c byte) bool {
	switch c {
	case '/', '\\', ';', '#', '=', '{', '}', '[', ']', ':', ',', ' ', '\t', '\f', '\r', '\n':
		return true
	}
	return false
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20:
			fmt.Fprintf(b, `\u%04x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
