// Package walk has the building blocks for walkers: locating nested values of
// another data type and converting them in place over the caller's range.
package walk

import (
	"reflect"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/types"
)

// Path follows a chain of map keys and returns the map at the end. Any
// missing link or non-map value stops the lookup.
func Path(data types.Map, path ...string) (types.Map, bool) {
	cur := data
	for _, key := range path {
		next, ok := cur.GetMap(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ConvertMap converts the map stored under key.
func ConvertMap(t datafix.MapType, data types.Map, key string, from, to datafix.DataVersion) {
	m, ok := data.GetMap(key)
	if !ok {
		return
	}
	if r := t.Convert(m, from, to); r != m {
		data.SetMap(key, r)
	}
}

// ConvertMapPath converts the map found by following path, if every link of
// the path is present.
func ConvertMapPath(t datafix.MapType, data types.Map, from, to datafix.DataVersion, path ...string) {
	if len(path) == 0 {
		return
	}
	parent, ok := Path(data, path[:len(path)-1]...)
	if !ok {
		return
	}
	ConvertMap(t, parent, path[len(path)-1], from, to)
}

// ConvertList converts every map element of the list stored under key.
// Elements of other kinds are skipped.
func ConvertList(t datafix.MapType, data types.Map, key string, from, to datafix.DataVersion) {
	l, ok := data.GetList(key)
	if !ok {
		return
	}
	ConvertElements(t, l, from, to)
}

// ConvertElements converts every map element of l.
func ConvertElements(t datafix.MapType, l types.List, from, to datafix.DataVersion) {
	for i := 0; i < l.Size(); i++ {
		m, ok := l.GetMap(i)
		if !ok {
			continue
		}
		if r := t.Convert(m, from, to); r != m {
			l.Set(i, r)
		}
	}
}

// ConvertLists is ConvertList for several keys of the same shape.
func ConvertLists(t datafix.MapType, data types.Map, from, to datafix.DataVersion, keys ...string) {
	for _, key := range keys {
		ConvertList(t, data, key, from, to)
	}
}

// ConvertListPath converts the list found at the end of path.
func ConvertListPath(t datafix.MapType, data types.Map, from, to datafix.DataVersion, path ...string) {
	if len(path) == 0 {
		return
	}
	parent, ok := Path(data, path[:len(path)-1]...)
	if !ok {
		return
	}
	ConvertList(t, parent, path[len(path)-1], from, to)
}

// ConvertValue converts the scalar stored under key.
func ConvertValue(t datafix.ValueType, data types.Map, key string, from, to datafix.DataVersion) {
	v, ok := data.Get(key)
	if !ok {
		return
	}
	if r := t.Convert(v, from, to); changed(v, r) {
		data.Set(key, r)
	}
}

// ConvertValueList converts every element of the list stored under key.
func ConvertValueList(t datafix.ValueType, data types.Map, key string, from, to datafix.DataVersion) {
	l, ok := data.GetList(key)
	if !ok {
		return
	}
	for i := 0; i < l.Size(); i++ {
		v := l.Get(i)
		if r := t.Convert(v, from, to); changed(v, r) {
			l.Set(i, r)
		}
	}
}

// ConvertKeys rewrites the keys of the map stored under key with t, keeping
// the values. Keys that convert to something other than a string stay.
func ConvertKeys(t datafix.ValueType, data types.Map, key string, from, to datafix.DataVersion) {
	m, ok := data.GetMap(key)
	if !ok {
		return
	}
	out := m.Factory().NewMap()
	renamed := false
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		nk := k
		if s, ok := t.Convert(k, from, to).(string); ok {
			nk = s
		}
		renamed = renamed || nk != k
		out.Set(nk, v)
	}
	if renamed {
		data.SetMap(key, out)
	}
}

// changed compares scalars without tripping over uncomparable values such as
// int arrays.
func changed(old, cur any) bool {
	ot, ct := reflect.TypeOf(old), reflect.TypeOf(cur)
	if ot != ct || ot == nil {
		return ot != ct
	}
	if !ot.Comparable() {
		return true
	}
	return old != cur
}
