package walk

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/types"
)

// Maps returns a walker converting the maps stored under each key.
func Maps(t datafix.MapType, keys ...string) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		for _, key := range keys {
			ConvertMap(t, data, key, from, to)
		}
		return nil
	}
}

// Lists returns a walker converting the map elements of the lists stored
// under each key, e.g. Lists(itemStack, "ArmorItems", "HandItems").
func Lists(t datafix.MapType, keys ...string) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		ConvertLists(t, data, from, to, keys...)
		return nil
	}
}

// Values returns a walker converting the scalars stored under each key.
func Values(t datafix.ValueType, keys ...string) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		for _, key := range keys {
			ConvertValue(t, data, key, from, to)
		}
		return nil
	}
}

// Chain runs walkers one after another, passing on replacements.
func Chain(walkers ...datafix.MapWalker) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		var replaced types.Map
		for _, w := range walkers {
			if r := w(data, from, to); r != nil {
				data, replaced = r, r
			}
		}
		return replaced
	}
}
