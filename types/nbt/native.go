package nbt

import (
	"errors"
	"fmt"
	"reflect"

	gonbt "github.com/Tnze/go-mc/nbt"

	"github.com/xmdhs/datafixer/types"
)

var ErrUnsupported = errors.New("unsupported nbt value")

// Decode reads a named root compound in NBT binary form.
func Decode(b []byte) (*Compound, error) {
	var m map[string]any
	if err := gonbt.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	c, err := CompoundFromNative(m)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	return c, nil
}

// Encode writes c in NBT binary form.
func Encode(c *Compound) ([]byte, error) {
	b, err := gonbt.Marshal(c.encodable())
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}
	return b, nil
}

// CompoundFromNative converts a map decoded by go-mc into a Compound.
func CompoundFromNative(m map[string]any) (*Compound, error) {
	c := &Compound{m: make(map[string]any, len(m))}
	for k, v := range m {
		nv, err := FromNative(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		c.m[k] = nv
	}
	return c, nil
}

// FromNative converts a plain Go value in go-mc's decoded form into a tree
// value. Typed slices and string keyed maps are accepted as lists and
// compounds.
func FromNative(v any) (any, error) {
	switch n := v.(type) {
	case map[string]any:
		return CompoundFromNative(n)
	case []any:
		l := &List{elems: make([]any, 0, len(n))}
		for i, e := range n {
			ne, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			t := typeOf(ne)
			if l.typ != types.ObjectTypeNone && t != l.typ {
				return nil, fmt.Errorf("[%d]: %w: mixed list of %s and %s", i, ErrUnsupported, l.typ, t)
			}
			l.typ = t
			l.elems = append(l.elems, ne)
		}
		return l, nil
	case bool, int, uint8, []int8:
		return normalize(v), nil
	case *Compound, *List:
		return v, nil
	}
	if typeOf(v) != types.ObjectTypeNone {
		return v, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return FromNative(elems)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return CompoundFromNative(m)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

// Native returns the compound as go-mc encodable Go values.
func (c *Compound) Native() map[string]any {
	m := make(map[string]any, len(c.m))
	for k, v := range c.m {
		m[k] = toNative(v)
	}
	return m
}

// Native returns the list elements as go-mc encodable Go values.
func (l *List) Native() []any {
	s := make([]any, len(l.elems))
	for i, v := range l.elems {
		s[i] = toNative(v)
	}
	return s
}

func toNative(v any) any {
	switch n := v.(type) {
	case *Compound:
		return n.Native()
	case *List:
		return n.Native()
	}
	return v
}
