// Package types describes the generic tree value that converters are written
// against. A backing format (NBT, JSON) implements Map and List once; the
// conversion engine and every rule only ever see these interfaces.
//
// All getters return ok == false when the key is absent or holds a value of
// another kind. They never fail, so a converter that cannot find the shape it
// expects simply does nothing.
package types

import "fmt"

// ObjectType identifies the kind of value stored under a key or in a list.
type ObjectType uint8

const (
	ObjectTypeNone ObjectType = iota
	ObjectTypeByte
	ObjectTypeShort
	ObjectTypeInt
	ObjectTypeLong
	ObjectTypeFloat
	ObjectTypeDouble
	// ObjectTypeNumber is only used in queries and matches any numeric kind.
	ObjectTypeNumber
	ObjectTypeBool
	ObjectTypeString
	ObjectTypeByteArray
	ObjectTypeIntArray
	ObjectTypeLongArray
	ObjectTypeList
	ObjectTypeMap
)

var objectTypeNames = [...]string{
	ObjectTypeNone:      "none",
	ObjectTypeByte:      "byte",
	ObjectTypeShort:     "short",
	ObjectTypeInt:       "int",
	ObjectTypeLong:      "long",
	ObjectTypeFloat:     "float",
	ObjectTypeDouble:    "double",
	ObjectTypeNumber:    "number",
	ObjectTypeBool:      "bool",
	ObjectTypeString:    "string",
	ObjectTypeByteArray: "byte_array",
	ObjectTypeIntArray:  "int_array",
	ObjectTypeLongArray: "long_array",
	ObjectTypeList:      "list",
	ObjectTypeMap:       "map",
}

func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return fmt.Sprintf("ObjectType(%d)", uint8(t))
}

// IsNumber reports whether t is one of the numeric kinds.
func (t ObjectType) IsNumber() bool {
	return t >= ObjectTypeByte && t <= ObjectTypeNumber
}

// Matches reports whether a value of kind t satisfies a query for want.
func (t ObjectType) Matches(want ObjectType) bool {
	if want == ObjectTypeNumber {
		return t.IsNumber()
	}
	return t == want
}

// Factory creates empty containers of one backing format.
type Factory interface {
	NewMap() Map
	NewList() List
}

// Map is a string keyed compound. Keys are unique.
//
// Values handed to Set must come from the same backing format, either
// primitives or Map/List values obtained from it.
type Map interface {
	Factory() Factory
	Copy() Map

	// Keys returns the keys in ascending order.
	Keys() []string
	Size() int
	IsEmpty() bool
	Clear()

	HasKey(key string) bool
	HasKeyOfType(key string, t ObjectType) bool
	TypeOf(key string) ObjectType

	Get(key string) (any, bool)
	Set(key string, value any)
	// Remove deletes key and returns what was stored there.
	Remove(key string) (any, bool)
	// RenameKey moves the value under from to to, replacing anything already
	// stored under to. It does nothing when from is absent.
	RenameKey(from, to string) bool

	GetMap(key string) (Map, bool)
	GetList(key string) (List, bool)
	GetString(key string) (string, bool)
	GetBool(key string) (bool, bool)
	GetByte(key string) (int8, bool)
	GetShort(key string) (int16, bool)
	GetInt(key string) (int32, bool)
	GetLong(key string) (int64, bool)
	GetFloat(key string) (float32, bool)
	GetDouble(key string) (float64, bool)
	GetByteArray(key string) ([]byte, bool)
	GetIntArray(key string) ([]int32, bool)
	GetLongArray(key string) ([]int64, bool)

	SetMap(key string, v Map)
	SetList(key string, v List)
	SetString(key string, v string)
	SetBool(key string, v bool)
	SetByte(key string, v int8)
	SetShort(key string, v int16)
	SetInt(key string, v int32)
	SetLong(key string, v int64)
	SetFloat(key string, v float32)
	SetDouble(key string, v float64)
	SetByteArray(key string, v []byte)
	SetIntArray(key string, v []int32)
	SetLongArray(key string, v []int64)
}

// List is an ordered sequence. Index arguments outside [0, Size()) panic.
type List interface {
	Factory() Factory
	Copy() List

	// Type is the element kind, ObjectTypeNone for an empty untyped list.
	Type() ObjectType
	Size() int
	IsEmpty() bool
	Clear()

	Get(i int) any
	Set(i int, v any)
	Add(v any)
	Remove(i int) any

	GetMap(i int) (Map, bool)
	GetList(i int) (List, bool)
	GetString(i int) (string, bool)
	GetInt(i int) (int32, bool)
	GetLong(i int) (int64, bool)
	GetDouble(i int) (float64, bool)

	AddMap(v Map)
	AddList(v List)
	AddString(v string)
	AddInt(v int32)
	AddLong(v int64)
	AddFloat(v float32)
	AddDouble(v float64)
}
