// Package jsonv implements the generic tree value over JSON documents.
//
// Numbers are int64 (Long) when integral and float64 (Double) otherwise,
// booleans are real bools and arrays may mix element kinds. There is no
// null: null members are dropped on parse.
package jsonv

import (
	"fmt"
	"sort"

	"github.com/xmdhs/datafixer/types"
)

type factory struct{}

func (factory) NewMap() types.Map   { return NewObject() }
func (factory) NewList() types.List { return NewArray() }

// Types creates empty JSON containers.
var Types types.Factory = factory{}

var _ types.Map = (*Object)(nil)

type Object struct {
	m map[string]any
}

func NewObject() *Object {
	return &Object{m: make(map[string]any)}
}

func (o *Object) Factory() types.Factory { return Types }

func (o *Object) Copy() types.Map { return o.copy() }

func (o *Object) copy() *Object {
	n := &Object{m: make(map[string]any, len(o.m))}
	for k, v := range o.m {
		n.m[k] = copyValue(v)
	}
	return n
}

func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.m))
	for k := range o.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o *Object) Size() int     { return len(o.m) }
func (o *Object) IsEmpty() bool { return len(o.m) == 0 }
func (o *Object) Clear()        { clear(o.m) }

func (o *Object) HasKey(key string) bool {
	_, ok := o.m[key]
	return ok
}

func (o *Object) HasKeyOfType(key string, t types.ObjectType) bool {
	v, ok := o.m[key]
	return ok && typeOf(v).Matches(t)
}

func (o *Object) TypeOf(key string) types.ObjectType {
	v, ok := o.m[key]
	if !ok {
		return types.ObjectTypeNone
	}
	return typeOf(v)
}

func (o *Object) Get(key string) (any, bool) {
	v, ok := o.m[key]
	return v, ok
}

func (o *Object) Set(key string, value any) {
	o.m[key] = normalize(value)
}

func (o *Object) Remove(key string) (any, bool) {
	v, ok := o.m[key]
	if ok {
		delete(o.m, key)
	}
	return v, ok
}

func (o *Object) RenameKey(from, to string) bool {
	v, ok := o.m[from]
	if !ok {
		return false
	}
	delete(o.m, from)
	o.m[to] = v
	return true
}

func (o *Object) GetMap(key string) (types.Map, bool) {
	v, ok := o.m[key].(*Object)
	if !ok {
		return nil, false
	}
	return v, true
}

func (o *Object) GetList(key string) (types.List, bool) {
	v, ok := o.m[key].(*Array)
	if !ok {
		return nil, false
	}
	return v, true
}

func (o *Object) GetString(key string) (string, bool) {
	v, ok := o.m[key].(string)
	return v, ok
}

func (o *Object) GetBool(key string) (bool, bool) {
	v, ok := o.m[key].(bool)
	return v, ok
}

func (o *Object) GetByte(key string) (int8, bool) {
	v, ok := types.AsInt64(o.m[key])
	return int8(v), ok
}

func (o *Object) GetShort(key string) (int16, bool) {
	v, ok := types.AsInt64(o.m[key])
	return int16(v), ok
}

func (o *Object) GetInt(key string) (int32, bool)  { return types.AsInt32(o.m[key]) }
func (o *Object) GetLong(key string) (int64, bool) { return types.AsInt64(o.m[key]) }

func (o *Object) GetFloat(key string) (float32, bool) {
	v, ok := types.AsFloat64(o.m[key])
	return float32(v), ok
}

func (o *Object) GetDouble(key string) (float64, bool) {
	return types.AsFloat64(o.m[key])
}

func (o *Object) GetByteArray(key string) ([]byte, bool) {
	a, ok := o.m[key].(*Array)
	if !ok {
		return nil, false
	}
	return numbers(a, func(v int64) byte { return byte(v) })
}

func (o *Object) GetIntArray(key string) ([]int32, bool) {
	a, ok := o.m[key].(*Array)
	if !ok {
		return nil, false
	}
	return numbers(a, func(v int64) int32 { return int32(v) })
}

func (o *Object) GetLongArray(key string) ([]int64, bool) {
	a, ok := o.m[key].(*Array)
	if !ok {
		return nil, false
	}
	return numbers(a, func(v int64) int64 { return v })
}

func (o *Object) SetMap(key string, v types.Map)     { o.Set(key, v) }
func (o *Object) SetList(key string, v types.List)   { o.Set(key, v) }
func (o *Object) SetString(key string, v string)     { o.m[key] = v }
func (o *Object) SetBool(key string, v bool)         { o.m[key] = v }
func (o *Object) SetByte(key string, v int8)         { o.m[key] = int64(v) }
func (o *Object) SetShort(key string, v int16)       { o.m[key] = int64(v) }
func (o *Object) SetInt(key string, v int32)         { o.m[key] = int64(v) }
func (o *Object) SetLong(key string, v int64)        { o.m[key] = v }
func (o *Object) SetFloat(key string, v float32)     { o.m[key] = float64(v) }
func (o *Object) SetDouble(key string, v float64)    { o.m[key] = v }
func (o *Object) SetByteArray(key string, v []byte)  { o.Set(key, v) }
func (o *Object) SetIntArray(key string, v []int32)  { o.Set(key, v) }
func (o *Object) SetLongArray(key string, v []int64) { o.Set(key, v) }

func (o *Object) String() string {
	s, err := Marshal(o)
	if err != nil {
		return fmt.Sprintf("jsonv.Object(%v)", err)
	}
	return s
}

func numbers[T any](a *Array, conv func(int64) T) ([]T, bool) {
	out := make([]T, len(a.elems))
	for i, e := range a.elems {
		v, ok := types.AsInt64(e)
		if !ok {
			return nil, false
		}
		out[i] = conv(v)
	}
	return out, true
}

func typeOf(v any) types.ObjectType {
	switch v.(type) {
	case int64:
		return types.ObjectTypeLong
	case float64:
		return types.ObjectTypeDouble
	case bool:
		return types.ObjectTypeBool
	case string:
		return types.ObjectTypeString
	case *Array:
		return types.ObjectTypeList
	case *Object:
		return types.ObjectTypeMap
	}
	return types.ObjectTypeNone
}

func normalize(v any) any {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float32:
		return float64(n)
	case []byte:
		return arrayOf(n)
	case []int32:
		return arrayOf(n)
	case []int64:
		return arrayOf(n)
	}
	if typeOf(v) == types.ObjectTypeNone {
		panic(fmt.Sprintf("jsonv: unsupported value of type %T", v))
	}
	return v
}

func arrayOf[T byte | int32 | int64](s []T) *Array {
	a := &Array{elems: make([]any, len(s))}
	for i, v := range s {
		a.elems[i] = int64(v)
	}
	return a
}

func copyValue(v any) any {
	switch n := v.(type) {
	case *Object:
		return n.copy()
	case *Array:
		return n.copy()
	}
	return v
}
