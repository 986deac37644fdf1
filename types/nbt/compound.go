// Package nbt implements the generic tree value over NBT tags.
//
// Values keep their tag kind: a Byte stays int8, an Int stays int32, and so
// on. Compounds hold *Compound, lists hold *List, arrays are []byte, []int32
// and []int64. Booleans are stored as Byte 0/1.
package nbt

import (
	"fmt"
	"sort"

	"github.com/xmdhs/datafixer/types"
)

type factory struct{}

func (factory) NewMap() types.Map   { return NewCompound() }
func (factory) NewList() types.List { return NewList() }

// Types creates empty NBT containers.
var Types types.Factory = factory{}

var _ types.Map = (*Compound)(nil)

// Compound is an NBT compound tag.
type Compound struct {
	m map[string]any
}

func NewCompound() *Compound {
	return &Compound{m: make(map[string]any)}
}

func (c *Compound) Factory() types.Factory { return Types }

func (c *Compound) Copy() types.Map {
	return c.copy()
}

func (c *Compound) copy() *Compound {
	n := &Compound{m: make(map[string]any, len(c.m))}
	for k, v := range c.m {
		n.m[k] = copyValue(v)
	}
	return n
}

func (c *Compound) Keys() []string {
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Compound) Size() int     { return len(c.m) }
func (c *Compound) IsEmpty() bool { return len(c.m) == 0 }
func (c *Compound) Clear()        { clear(c.m) }

func (c *Compound) HasKey(key string) bool {
	_, ok := c.m[key]
	return ok
}

func (c *Compound) HasKeyOfType(key string, t types.ObjectType) bool {
	v, ok := c.m[key]
	return ok && typeOf(v).Matches(t)
}

func (c *Compound) TypeOf(key string) types.ObjectType {
	v, ok := c.m[key]
	if !ok {
		return types.ObjectTypeNone
	}
	return typeOf(v)
}

func (c *Compound) Get(key string) (any, bool) {
	v, ok := c.m[key]
	return v, ok
}

// Set stores value under key. Values that are not NBT primitives or NBT
// containers panic.
func (c *Compound) Set(key string, value any) {
	c.m[key] = normalize(value)
}

func (c *Compound) Remove(key string) (any, bool) {
	v, ok := c.m[key]
	if ok {
		delete(c.m, key)
	}
	return v, ok
}

func (c *Compound) RenameKey(from, to string) bool {
	v, ok := c.m[from]
	if !ok {
		return false
	}
	delete(c.m, from)
	c.m[to] = v
	return true
}

func (c *Compound) GetMap(key string) (types.Map, bool) {
	v, ok := c.m[key].(*Compound)
	if !ok {
		return nil, false
	}
	return v, true
}

func (c *Compound) GetList(key string) (types.List, bool) {
	v, ok := c.m[key].(*List)
	if !ok {
		return nil, false
	}
	return v, true
}

func (c *Compound) GetString(key string) (string, bool) {
	v, ok := c.m[key].(string)
	return v, ok
}

func (c *Compound) GetBool(key string) (bool, bool) {
	v, ok := types.AsInt64(c.m[key])
	return v != 0, ok
}

func (c *Compound) GetByte(key string) (int8, bool) {
	v, ok := types.AsInt64(c.m[key])
	return int8(v), ok
}

func (c *Compound) GetShort(key string) (int16, bool) {
	v, ok := types.AsInt64(c.m[key])
	return int16(v), ok
}

func (c *Compound) GetInt(key string) (int32, bool) {
	return types.AsInt32(c.m[key])
}

func (c *Compound) GetLong(key string) (int64, bool) {
	return types.AsInt64(c.m[key])
}

func (c *Compound) GetFloat(key string) (float32, bool) {
	v, ok := types.AsFloat64(c.m[key])
	return float32(v), ok
}

func (c *Compound) GetDouble(key string) (float64, bool) {
	return types.AsFloat64(c.m[key])
}

func (c *Compound) GetByteArray(key string) ([]byte, bool) {
	v, ok := c.m[key].([]byte)
	return v, ok
}

func (c *Compound) GetIntArray(key string) ([]int32, bool) {
	v, ok := c.m[key].([]int32)
	return v, ok
}

func (c *Compound) GetLongArray(key string) ([]int64, bool) {
	v, ok := c.m[key].([]int64)
	return v, ok
}

func (c *Compound) SetMap(key string, v types.Map)     { c.Set(key, v) }
func (c *Compound) SetList(key string, v types.List)   { c.Set(key, v) }
func (c *Compound) SetString(key string, v string)     { c.m[key] = v }
func (c *Compound) SetByte(key string, v int8)         { c.m[key] = v }
func (c *Compound) SetShort(key string, v int16)       { c.m[key] = v }
func (c *Compound) SetInt(key string, v int32)         { c.m[key] = v }
func (c *Compound) SetLong(key string, v int64)        { c.m[key] = v }
func (c *Compound) SetFloat(key string, v float32)     { c.m[key] = v }
func (c *Compound) SetDouble(key string, v float64)    { c.m[key] = v }
func (c *Compound) SetByteArray(key string, v []byte)  { c.m[key] = v }
func (c *Compound) SetIntArray(key string, v []int32)  { c.m[key] = v }
func (c *Compound) SetLongArray(key string, v []int64) { c.m[key] = v }

func (c *Compound) SetBool(key string, v bool) {
	c.m[key] = boolByte(v)
}

func (c *Compound) String() string {
	return fmt.Sprint(c.Native())
}

func boolByte(v bool) int8 {
	if v {
		return 1
	}
	return 0
}

func typeOf(v any) types.ObjectType {
	switch v.(type) {
	case int8:
		return types.ObjectTypeByte
	case int16:
		return types.ObjectTypeShort
	case int32:
		return types.ObjectTypeInt
	case int64:
		return types.ObjectTypeLong
	case float32:
		return types.ObjectTypeFloat
	case float64:
		return types.ObjectTypeDouble
	case string:
		return types.ObjectTypeString
	case []byte:
		return types.ObjectTypeByteArray
	case []int32:
		return types.ObjectTypeIntArray
	case []int64:
		return types.ObjectTypeLongArray
	case *List:
		return types.ObjectTypeList
	case *Compound:
		return types.ObjectTypeMap
	}
	return types.ObjectTypeNone
}

// normalize maps convenience Go values onto the tag kinds stored in a tree.
func normalize(v any) any {
	switch n := v.(type) {
	case bool:
		return boolByte(n)
	case int:
		return int32(n)
	case uint8:
		return int8(n)
	case []int8:
		b := make([]byte, len(n))
		for i := range n {
			b[i] = byte(n[i])
		}
		return b
	}
	if typeOf(v) == types.ObjectTypeNone {
		panic(fmt.Sprintf("nbt: unsupported value of type %T", v))
	}
	return v
}

func copyValue(v any) any {
	switch n := v.(type) {
	case *Compound:
		return n.copy()
	case *List:
		return n.copy()
	case []byte:
		return append([]byte(nil), n...)
	case []int32:
		return append([]int32(nil), n...)
	case []int64:
		return append([]int64(nil), n...)
	}
	return v
}
