// Package text builds serialized chat components.
package text

import (
	"github.com/xmdhs/datafixer/helpers/lenient"
	"github.com/xmdhs/datafixer/types/jsonv"
)

// Empty is the component for an empty string.
const Empty = `{"text":""}`

// Plain returns the component showing s literally.
func Plain(s string) string {
	o := jsonv.NewObject()
	o.SetString("text", s)
	return mustMarshal(o)
}

// Translatable returns a component for a translation key with string
// arguments.
func Translatable(key string, args ...string) string {
	o := jsonv.NewObject()
	o.SetString("translate", key)
	if len(args) > 0 {
		with := jsonv.NewArray()
		for _, a := range args {
			with.AddString(a)
		}
		o.SetList("with", with)
	}
	return mustMarshal(o)
}

// Repair turns text that may be a loosely written component, a quoted
// string or plain prose into a serialized component. It never fails;
// anything that does not parse becomes a plain component of the input.
func Repair(s string) string {
	if s == "" || s == "null" {
		return Empty
	}
	first, last := s[0], s[len(s)-1]
	if !(first == '"' && last == '"' || first == '{' && last == '}') {
		return Plain(s)
	}
	fixed, err := lenient.Fix(s)
	if err != nil {
		return Plain(s)
	}
	if fixed.Type == lenient.TypeNull {
		return Empty
	}
	v, err := jsonv.Parse(fixed.Text)
	if err != nil {
		return Plain(s)
	}
	switch c := v.(type) {
	case string:
		return Plain(c)
	case *jsonv.Object, *jsonv.Array:
		out, err := jsonv.Marshal(c)
		if err != nil {
			return Plain(s)
		}
		return out
	}
	return Plain(s)
}

func mustMarshal(o *jsonv.Object) string {
	s, err := jsonv.Marshal(o)
	if err != nil {
		panic(err)
	}
	return s
}
