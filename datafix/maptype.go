package datafix

import (
	"fmt"

	"github.com/xmdhs/datafixer/types"
)

var _ MapType = (*MapDataType)(nil)

// MapDataType is the converter chain of a map shaped data type.
//
// Chains are filled once during registration and only read afterwards, so
// Convert may be called from many goroutines on independent values.
type MapDataType struct {
	name       string
	converters []versioned[MapConverter]
	walkers    floorMap[MapWalker]
	hooks      floorMap[DataHook]

	// set for IDDataType
	idKey     string
	idWalkers map[string]*floorMap[MapWalker]
}

func NewMapDataType(name string) *MapDataType {
	return &MapDataType{name: name}
}

func (t *MapDataType) Name() string { return t.name }

// AddStructureConverter appends a converter that runs for every value of this
// type. Converters must be added in non-decreasing version order; the chain is
// never re-sorted.
func (t *MapDataType) AddStructureConverter(version DataVersion, conv MapConverter) {
	if n := len(t.converters); debugChecks && n > 0 && version.Less(t.converters[n-1].version) {
		panic(fmt.Sprintf("datafix: %s: converter for %s added after %s", t.name, version, t.converters[n-1].version))
	}
	t.converters = append(t.converters, versioned[MapConverter]{version: version, fn: conv})
}

// AddStructureWalker registers a walker. When converting to version v, the
// walkers registered at the greatest version <= v all run, in registration
// order, so a version that changes the layout registers its complete set.
func (t *MapDataType) AddStructureWalker(version DataVersion, walker MapWalker) {
	t.walkers.add(version, walker)
}

// AddStructureHook registers a hook around converters and walkers. The hooks
// in effect for a converter are those registered at the greatest version <=
// the converter's version.
func (t *MapDataType) AddStructureHook(version DataVersion, hook DataHook) {
	t.hooks.add(version, hook)
}

// Counts reports the number of registered converters and walkers.
func (t *MapDataType) Counts() (converters, walkers int) {
	walkers = t.walkers.len()
	for _, f := range t.idWalkers {
		walkers += f.len()
	}
	return len(t.converters), walkers
}

func (t *MapDataType) ConvertAny(data any, from, to DataVersion) any {
	m, ok := data.(types.Map)
	if !ok {
		return data
	}
	return t.Convert(m, from, to)
}

// Convert runs every converter with a version in (from, to] in registration
// order, then the walkers in effect at to. It returns the converted map, which
// is data itself unless a converter replaced the whole value. Nothing runs
// unless from < to.
func (t *MapDataType) Convert(data types.Map, from, to DataVersion) types.Map {
	if !from.Less(to) {
		return data
	}
	for _, c := range t.converters {
		if !from.Less(c.version) {
			continue
		}
		if to.Less(c.version) {
			break
		}
		hooks := t.hooks.floor(c.version)
		data = runPreHooks(hooks, data, from, to)
		if r := c.fn(data, from, to); r != nil {
			data = r
		}
		data = runPostHooks(hooks, data, from, to)
	}

	hooks := t.hooks.floor(to)
	data = runPreHooks(hooks, data, from, to)
	if t.idWalkers != nil {
		if id, ok := data.GetString(t.idKey); ok {
			if f := t.idWalkers[id]; f != nil {
				data = runWalkers(f.floor(to), data, from, to)
			}
		}
	}
	data = runWalkers(t.walkers.floor(to), data, from, to)
	return runPostHooks(hooks, data, from, to)
}

func runWalkers(walkers []MapWalker, data types.Map, from, to DataVersion) types.Map {
	for _, w := range walkers {
		if r := w(data, from, to); r != nil {
			data = r
		}
	}
	return data
}

func runPreHooks(hooks []DataHook, data types.Map, from, to DataVersion) types.Map {
	for _, h := range hooks {
		if r := h.PreHook(data, from, to); r != nil {
			data = r
		}
	}
	return data
}

func runPostHooks(hooks []DataHook, data types.Map, from, to DataVersion) types.Map {
	for i := len(hooks) - 1; i >= 0; i-- {
		if r := hooks[i].PostHook(data, from, to); r != nil {
			data = r
		}
	}
	return data
}
