package datafix

import "github.com/xmdhs/datafixer/types"

// MapConverter rewrites data for one version step. It mutates data in place
// and returns nil, or returns a map that replaces data entirely.
//
// Converters must tolerate any input shape: a missing key or a value of the
// wrong kind means there is nothing to do.
type MapConverter func(data types.Map, from, to DataVersion) types.Map

// MapWalker locates values of other data types nested inside data and
// converts them over the same (from, to] range. Like MapConverter it returns
// nil or a replacement.
type MapWalker func(data types.Map, from, to DataVersion) types.Map

// ValueConverter rewrites a scalar value such as an item or block name. It
// returns nil to keep data.
type ValueConverter func(data any, from, to DataVersion) any

// DataHook runs around every converter of a map data type, and around its
// walkers. Either function may return a replacement map.
type DataHook interface {
	PreHook(data types.Map, from, to DataVersion) types.Map
	PostHook(data types.Map, from, to DataVersion) types.Map
}

// HookFuncs adapts a pair of functions to DataHook. A nil function does nothing.
type HookFuncs struct {
	Pre  MapConverter
	Post MapConverter
}

func (h HookFuncs) PreHook(data types.Map, from, to DataVersion) types.Map {
	if h.Pre == nil {
		return nil
	}
	return h.Pre(data, from, to)
}

func (h HookFuncs) PostHook(data types.Map, from, to DataVersion) types.Map {
	if h.Post == nil {
		return nil
	}
	return h.Post(data, from, to)
}

// DataType is a named category of tree value with its own converter chain.
type DataType interface {
	Name() string
	// ConvertAny converts data and returns the result, which is data itself
	// unless a converter replaced it. Values of an unexpected kind are
	// returned unchanged.
	ConvertAny(data any, from, to DataVersion) any
}

// MapType is a DataType whose values are maps.
type MapType interface {
	DataType
	Convert(data types.Map, from, to DataVersion) types.Map
}

// ValueType is a DataType whose values are scalars.
type ValueType interface {
	DataType
	Convert(data any, from, to DataVersion) any
}

type versioned[T any] struct {
	version DataVersion
	fn      T
}
