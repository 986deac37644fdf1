// Package rename registers converters that rename identifiers, both where
// they appear as plain names and as the id of a typed value.
package rename

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/tables"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

// Func returns the new name, or false to keep the old one.
type Func func(old string) (string, bool)

func FromTable(t tables.Table) Func {
	return t.Lookup
}

// FromLazy reads a table that is built on first use.
func FromLazy(t *tables.Lazy[tables.Table]) Func {
	return func(old string) (string, bool) {
		return t.Get().Lookup(old)
	}
}

// Value returns a converter renaming string values.
func Value(fn Func) datafix.ValueConverter {
	return func(data any, _, _ datafix.DataVersion) any {
		s, ok := data.(string)
		if !ok {
			return nil
		}
		if n, ok := fn(s); ok {
			return n
		}
		return nil
	}
}

// Key returns a converter renaming the string stored under key.
func Key(key string, fn Func) datafix.MapConverter {
	return func(data types.Map, _, _ datafix.DataVersion) types.Map {
		s, ok := data.GetString(key)
		if !ok {
			return nil
		}
		if n, ok := fn(s); ok {
			data.SetString(key, n)
		}
		return nil
	}
}

func Entities(r *registry.Registry, v datafix.DataVersion, fn Func) {
	r.EntityName.AddConverter(v, Value(fn))
	r.Entity.AddStructureConverter(v, Key(r.Entity.IDKey(), fn))
}

func TileEntities(r *registry.Registry, v datafix.DataVersion, fn Func) {
	r.TileEntity.AddStructureConverter(v, Key(r.TileEntity.IDKey(), fn))
}

func Items(r *registry.Registry, v datafix.DataVersion, fn Func) {
	r.ItemName.AddConverter(v, Value(fn))
	r.ItemStack.AddStructureConverter(v, Key(r.ItemStack.IDKey(), fn))
}

func Blocks(r *registry.Registry, v datafix.DataVersion, fn Func) {
	r.BlockName.AddConverter(v, Value(fn))
	r.BlockState.AddStructureConverter(v, Key(r.BlockState.IDKey(), fn))
}

func Biomes(r *registry.Registry, v datafix.DataVersion, fn Func) {
	r.Biome.AddConverter(v, Value(fn))
}
