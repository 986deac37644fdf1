// Package tables holds static lookup tables used by rules. Tables are built on
// first use and never change afterwards.
package tables

import (
	"sync"

	"github.com/xmdhs/datafixer/helpers/resource"
)

// Lazy builds a value once, on first Get, from any goroutine.
type Lazy[T any] struct {
	get func() T
}

func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{get: sync.OnceValue(build)}
}

func (l *Lazy[T]) Get() T { return l.get() }

// Table maps old identifiers to new ones.
type Table map[string]string

func (t Table) Lookup(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// LookupNamespaced tries key as written and then with the default namespace,
// so "stone" and "minecraft:stone" find the same entry.
func (t Table) LookupNamespaced(key string) (string, bool) {
	if v, ok := t[key]; ok {
		return v, true
	}
	if k := resource.CorrectNamespace(key); k != key {
		v, ok := t[k]
		return v, ok
	}
	return "", false
}

// Set is a set of identifiers compared with namespaces corrected.
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s[resource.CorrectNamespace(it)] = struct{}{}
	}
	return s
}

func (s Set) Has(item string) bool {
	_, ok := s[resource.CorrectNamespace(item)]
	return ok
}
