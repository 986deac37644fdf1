package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/tables"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

var v102 = datafix.V(102)

var numericItemIDs = tables.NewLazy(func() map[int32]string {
	return map[int32]string{
		0:   "minecraft:air",
		1:   "minecraft:stone",
		2:   "minecraft:grass",
		3:   "minecraft:dirt",
		4:   "minecraft:cobblestone",
		5:   "minecraft:planks",
		12:  "minecraft:sand",
		13:  "minecraft:gravel",
		17:  "minecraft:log",
		35:  "minecraft:wool",
		54:  "minecraft:chest",
		256: "minecraft:iron_shovel",
		257: "minecraft:iron_pickaxe",
		261: "minecraft:bow",
		262: "minecraft:arrow",
		263: "minecraft:coal",
		264: "minecraft:diamond",
		267: "minecraft:iron_sword",
		268: "minecraft:wooden_sword",
		276: "minecraft:diamond_sword",
		280: "minecraft:stick",
		298: "minecraft:leather_helmet",
		310: "minecraft:diamond_helmet",
		322: "minecraft:golden_apple",
		323: "minecraft:sign",
		346: "minecraft:fishing_rod",
		351: "minecraft:dye",
		358: "minecraft:filled_map",
		359: "minecraft:shears",
		373: "minecraft:potion",
		383: "minecraft:spawn_egg",
		386: "minecraft:writable_book",
		387: "minecraft:written_book",
		397: "minecraft:skull",
		442: "minecraft:shield",
		443: "minecraft:elytra",
	}
})

// itemNameFromID maps a numeric item id. Unknown ids become air.
func itemNameFromID(id int32) string {
	if name, ok := numericItemIDs.Get()[id]; ok {
		return name
	}
	return "minecraft:air"
}

func registerV102(r *registry.Registry) {
	r.ItemName.AddConverter(v102, func(data any, _, _ datafix.DataVersion) any {
		id, ok := types.AsInt32(data)
		if !ok {
			return nil
		}
		return itemNameFromID(id)
	})

	r.ItemStack.AddStructureConverter(v102, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		raw, ok := data.Get("id")
		if !ok {
			return nil
		}
		if id, ok := types.AsInt32(raw); ok {
			data.SetString("id", itemNameFromID(id))
		}
		return nil
	})

	r.ItemStack.AddConverterForID("minecraft:potion", v102, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		damage, _ := data.GetShort("Damage")
		if damage&16384 != 0 {
			data.SetString("id", "minecraft:splash_potion")
		}
		return nil
	})
}
