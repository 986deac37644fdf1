// Package resource parses namespaced identifiers such as "minecraft:stone".
package resource

import (
	"fmt"
	"strings"
)

const DefaultNamespace = "minecraft"

type Location struct {
	Namespace string
	Path      string
}

func (l Location) String() string {
	return l.Namespace + ":" + l.Path
}

type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("resource: %q: %s", e.Input, e.Reason)
}

// Parse splits s at the first sep. A missing namespace, or an empty one,
// means the default namespace.
func Parse(s string, sep byte) (Location, error) {
	ns, path := DefaultNamespace, s
	if i := strings.IndexByte(s, sep); i >= 0 {
		path = s[i+1:]
		if i > 0 {
			ns = s[:i]
		}
	}
	for i := 0; i < len(ns); i++ {
		if !validNamespaceChar(ns[i]) {
			return Location{}, &ValidationError{Input: s, Reason: fmt.Sprintf("invalid namespace character %q", ns[i])}
		}
	}
	for i := 0; i < len(path); i++ {
		if !validPathChar(path[i]) {
			return Location{}, &ValidationError{Input: s, Reason: fmt.Sprintf("invalid path character %q", path[i])}
		}
	}
	return Location{Namespace: ns, Path: path}, nil
}

// MustParse is Parse with ':' for static tables.
func MustParse(s string) Location {
	l, err := Parse(s, ':')
	if err != nil {
		panic(err)
	}
	return l
}

// CorrectNamespace returns s with the default namespace added when it parses,
// and s unchanged otherwise.
func CorrectNamespace(s string) string {
	l, err := Parse(s, ':')
	if err != nil {
		return s
	}
	return l.String()
}

func validNamespaceChar(c byte) bool {
	return c == '_' || c == '-' || c == '.' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

func validPathChar(c byte) bool {
	return c == '/' || validNamespaceChar(c)
}
