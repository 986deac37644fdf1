package jsonv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNotObject = errors.New("top level value is not an object")

// ParseError reports malformed JSON text.
type ParseError struct {
	Offset int64
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("json: %s at offset %d", e.Reason, e.Offset)
}

// Parse decodes strict JSON text into a tree value: *Object, *Array, string,
// int64, float64 or bool.
func Parse(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, toParseError(err, dec.InputOffset())
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Offset: dec.InputOffset(), Reason: "trailing data after top level value"}
	}
	if raw == nil {
		return nil, &ParseError{Offset: 0, Reason: "null top level value"}
	}
	return FromNative(raw)
}

// ParseMap is Parse restricted to a top level object.
func ParseMap(text string) (*Object, error) {
	v, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("ParseMap: %w", err)
	}
	o, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("ParseMap: %w", ErrNotObject)
	}
	return o, nil
}

func toParseError(err error, offset int64) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &ParseError{Offset: se.Offset, Reason: se.Error()}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{Offset: offset, Reason: "unexpected end of input"}
	}
	return &ParseError{Offset: offset, Reason: err.Error()}
}

// FromNative converts values produced by encoding/json (with or without
// UseNumber) into a tree value.
func FromNative(v any) (any, error) {
	switch n := v.(type) {
	case map[string]any:
		o := &Object{m: make(map[string]any, len(n))}
		for k, e := range n {
			if e == nil {
				continue
			}
			ne, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			o.m[k] = ne
		}
		return o, nil
	case []any:
		a := &Array{elems: make([]any, 0, len(n))}
		for _, e := range n {
			if e == nil {
				continue
			}
			ne, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			a.elems = append(a.elems, ne)
		}
		return a, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("bad number %q", n.String())}
		}
		return f, nil
	case float64:
		if n == float64(int64(n)) {
			return int64(n), nil
		}
		return n, nil
	case string, bool:
		return n, nil
	}
	return nil, fmt.Errorf("jsonv: unsupported value of type %T", v)
}

// Marshal encodes a tree value as compact JSON text with sorted keys.
func Marshal(v any) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toNative(v)); err != nil {
		return "", fmt.Errorf("Marshal: %w", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func toNative(v any) any {
	switch n := v.(type) {
	case *Object:
		m := make(map[string]any, len(n.m))
		for k, e := range n.m {
			m[k] = toNative(e)
		}
		return m
	case *Array:
		s := make([]any, len(n.elems))
		for i, e := range n.elems {
			s[i] = toNative(e)
		}
		return s
	}
	return v
}
