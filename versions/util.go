package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

func eachMap(l types.List, fn func(types.Map)) {
	for i := 0; i < l.Size(); i++ {
		if m, ok := l.GetMap(i); ok {
			fn(m)
		}
	}
}

// elementMaps converts, for each map element of the list under listKey, the
// map found by following path inside the element.
func elementMaps(t datafix.MapType, listKey string, path ...string) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		l, ok := data.GetList(listKey)
		if !ok {
			return nil
		}
		eachMap(l, func(m types.Map) {
			walk.ConvertMapPath(t, m, from, to, path...)
		})
		return nil
	}
}

// elementValues converts the scalar under key of each map element of the
// list under listKey.
func elementValues(t datafix.ValueType, listKey, key string) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		l, ok := data.GetList(listKey)
		if !ok {
			return nil
		}
		eachMap(l, func(m types.Map) {
			walk.ConvertValue(t, m, key, from, to)
		})
		return nil
	}
}

// at runs walker on the map found by following path.
func at(walker datafix.MapWalker, path ...string) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		m, ok := walk.Path(data, path...)
		if !ok {
			return nil
		}
		walker(m, from, to)
		return nil
	}
}

// convertSelf converts the whole value as another data type, for values
// such as a spawner minecart that is also spawner data.
func convertSelf(t datafix.MapType) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		return t.Convert(data, from, to)
	}
}

func getOrCreateMap(data types.Map, key string) types.Map {
	if m, ok := data.GetMap(key); ok {
		return m
	}
	m := data.Factory().NewMap()
	data.SetMap(key, m)
	return m
}

// stringKey returns a converter that only runs when key holds a string.
func stringKey(key string, fn func(data types.Map, s string)) datafix.MapConverter {
	return func(data types.Map, _, _ datafix.DataVersion) types.Map {
		if s, ok := data.GetString(key); ok {
			fn(data, s)
		}
		return nil
	}
}

// valueLists converts every element of the lists under keys.
func valueLists(t datafix.ValueType, keys ...string) datafix.MapWalker {
	return func(data types.Map, from, to datafix.DataVersion) types.Map {
		for _, key := range keys {
			walk.ConvertValueList(t, data, key, from, to)
		}
		return nil
	}
}
