package jsonv

import "github.com/xmdhs/datafixer/types"

var _ types.List = (*Array)(nil)

// Array is a JSON array. Elements may be of different kinds.
type Array struct {
	elems []any
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Factory() types.Factory { return Types }
func (a *Array) Copy() types.List       { return a.copy() }

func (a *Array) copy() *Array {
	n := &Array{elems: make([]any, len(a.elems))}
	for i, v := range a.elems {
		n.elems[i] = copyValue(v)
	}
	return n
}

// Type is the kind of the first element; JSON arrays carry no element type.
func (a *Array) Type() types.ObjectType {
	if len(a.elems) == 0 {
		return types.ObjectTypeNone
	}
	return typeOf(a.elems[0])
}

func (a *Array) Size() int     { return len(a.elems) }
func (a *Array) IsEmpty() bool { return len(a.elems) == 0 }
func (a *Array) Clear()        { a.elems = a.elems[:0] }

func (a *Array) Get(i int) any    { return a.elems[i] }
func (a *Array) Set(i int, v any) { a.elems[i] = normalize(v) }
func (a *Array) Add(v any)        { a.elems = append(a.elems, normalize(v)) }

func (a *Array) Remove(i int) any {
	v := a.elems[i]
	a.elems = append(a.elems[:i], a.elems[i+1:]...)
	return v
}

func (a *Array) GetMap(i int) (types.Map, bool) {
	v, ok := a.elems[i].(*Object)
	if !ok {
		return nil, false
	}
	return v, true
}

func (a *Array) GetList(i int) (types.List, bool) {
	v, ok := a.elems[i].(*Array)
	if !ok {
		return nil, false
	}
	return v, true
}

func (a *Array) GetString(i int) (string, bool) {
	v, ok := a.elems[i].(string)
	return v, ok
}

func (a *Array) GetInt(i int) (int32, bool)      { return types.AsInt32(a.elems[i]) }
func (a *Array) GetLong(i int) (int64, bool)     { return types.AsInt64(a.elems[i]) }
func (a *Array) GetDouble(i int) (float64, bool) { return types.AsFloat64(a.elems[i]) }

func (a *Array) AddMap(v types.Map)   { a.Add(v) }
func (a *Array) AddList(v types.List) { a.Add(v) }
func (a *Array) AddString(v string)   { a.Add(v) }
func (a *Array) AddInt(v int32)       { a.Add(v) }
func (a *Array) AddLong(v int64)      { a.Add(v) }
func (a *Array) AddFloat(v float32)   { a.Add(v) }
func (a *Array) AddDouble(v float64)  { a.Add(v) }
