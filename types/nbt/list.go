package nbt

import (
	"fmt"

	"github.com/xmdhs/datafixer/types"
)

var _ types.List = (*List)(nil)

// List is an NBT list tag. All elements share one tag kind; adding an element
// of another kind panics.
type List struct {
	elems []any
	typ   types.ObjectType
}

func NewList() *List {
	return &List{}
}

func (l *List) Factory() types.Factory { return Types }

func (l *List) Copy() types.List {
	return l.copy()
}

func (l *List) copy() *List {
	n := &List{elems: make([]any, len(l.elems)), typ: l.typ}
	for i, v := range l.elems {
		n.elems[i] = copyValue(v)
	}
	return n
}

func (l *List) Type() types.ObjectType { return l.typ }
func (l *List) Size() int              { return len(l.elems) }
func (l *List) IsEmpty() bool          { return len(l.elems) == 0 }

func (l *List) Clear() {
	l.elems = l.elems[:0]
	l.typ = types.ObjectTypeNone
}

func (l *List) Get(i int) any {
	return l.elems[i]
}

func (l *List) Set(i int, v any) {
	_ = l.elems[i]
	v = normalize(v)
	t := typeOf(v)
	if len(l.elems) > 1 && t != l.typ {
		panic(fmt.Sprintf("nbt: cannot store %s in list of %s", t, l.typ))
	}
	l.typ = t
	l.elems[i] = v
}

func (l *List) Add(v any) {
	v = normalize(v)
	t := typeOf(v)
	switch l.typ {
	case types.ObjectTypeNone:
		l.typ = t
	case t:
	default:
		panic(fmt.Sprintf("nbt: cannot add %s to list of %s", t, l.typ))
	}
	l.elems = append(l.elems, v)
}

func (l *List) Remove(i int) any {
	v := l.elems[i]
	l.elems = append(l.elems[:i], l.elems[i+1:]...)
	if len(l.elems) == 0 {
		l.typ = types.ObjectTypeNone
	}
	return v
}

func (l *List) GetMap(i int) (types.Map, bool) {
	v, ok := l.elems[i].(*Compound)
	if !ok {
		return nil, false
	}
	return v, true
}

func (l *List) GetList(i int) (types.List, bool) {
	v, ok := l.elems[i].(*List)
	if !ok {
		return nil, false
	}
	return v, true
}

func (l *List) GetString(i int) (string, bool) {
	v, ok := l.elems[i].(string)
	return v, ok
}

func (l *List) GetInt(i int) (int32, bool)      { return types.AsInt32(l.elems[i]) }
func (l *List) GetLong(i int) (int64, bool)     { return types.AsInt64(l.elems[i]) }
func (l *List) GetDouble(i int) (float64, bool) { return types.AsFloat64(l.elems[i]) }

func (l *List) AddMap(v types.Map)   { l.Add(v) }
func (l *List) AddList(v types.List) { l.Add(v) }
func (l *List) AddString(v string)   { l.Add(v) }
func (l *List) AddInt(v int32)       { l.Add(v) }
func (l *List) AddLong(v int64)      { l.Add(v) }
func (l *List) AddFloat(v float32)   { l.Add(v) }
func (l *List) AddDouble(v float64)  { l.Add(v) }
