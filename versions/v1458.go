package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/text"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v1458 = datafix.V(1458)

var namedTileEntities = []string{
	"minecraft:beacon", "minecraft:banner", "minecraft:brewing_stand", "minecraft:chest",
	"minecraft:trapped_chest", "minecraft:dispenser", "minecraft:dropper",
	"minecraft:enchanting_table", "minecraft:furnace", "minecraft:hopper", "minecraft:shulker_box",
}

// customNameToComponent wraps a plain CustomName. An empty name is removed.
func customNameToComponent(data types.Map, name string) {
	if name == "" {
		data.Remove("CustomName")
		return
	}
	data.SetString("CustomName", text.Plain(name))
}

func registerV1458(r *registry.Registry) {
	r.Entity.AddStructureConverter(v1458, stringKey("CustomName", customNameToComponent))

	for _, id := range namedTileEntities {
		r.TileEntity.AddConverterForID(id, v1458, stringKey("CustomName", customNameToComponent))
	}

	r.ItemStack.AddStructureConverter(v1458, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		display, ok := walk.Path(data, "tag", "display")
		if !ok {
			return nil
		}
		if name, ok := display.GetString("Name"); ok {
			display.SetString("Name", text.Plain(name))
		} else if loc, ok := display.GetString("LocName"); ok {
			display.Remove("LocName")
			display.SetString("Name", text.Translatable(loc))
		}
		return nil
	})
}
