package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/uuidconv"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v2514 = datafix.V(2514)

var tameableEntities = []string{
	"minecraft:cat", "minecraft:donkey", "minecraft:horse", "minecraft:llama", "minecraft:mule",
	"minecraft:parrot", "minecraft:skeleton_horse", "minecraft:trader_llama", "minecraft:wolf",
	"minecraft:zombie_horse", "minecraft:fox",
}

func updateAttributeUUIDs(data types.Map, listKey string) {
	l, ok := data.GetList(listKey)
	if !ok {
		return
	}
	eachMap(l, func(attr types.Map) {
		mods, ok := attr.GetList("Modifiers")
		if !ok {
			return
		}
		eachMap(mods, func(mod types.Map) {
			uuidconv.ReplaceLeastMost(mod, "UUID", "UUID")
		})
	})
}

// updateLivingUUIDs covers everything an entity and a player share.
func updateLivingUUIDs(data types.Map) {
	uuidconv.ReplaceLeastMost(data, "UUID", "UUID")
	updateAttributeUUIDs(data, "Attributes")
	if leash, ok := data.GetMap("Leash"); ok {
		uuidconv.ReplaceLeastMost(leash, "UUID", "UUID")
	}
}

func registerV2514(r *registry.Registry) {
	r.Entity.AddStructureConverter(v2514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		updateLivingUUIDs(data)
		return nil
	})
	for _, id := range tameableEntities {
		r.Entity.AddConverterForID(id, v2514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
			uuidconv.ReplaceString(data, "OwnerUUID", "Owner")
			return nil
		})
	}
	r.Entity.AddConverterForID("minecraft:item", v2514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		uuidconv.ReplaceML(data, "Owner", "Owner")
		uuidconv.ReplaceML(data, "Thrower", "Thrower")
		return nil
	})

	r.Player.AddStructureConverter(v2514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		updateLivingUUIDs(data)
		if vehicle, ok := data.GetMap("RootVehicle"); ok {
			uuidconv.ReplaceLeastMost(vehicle, "Attach", "Attach")
		}
		return nil
	})

	r.ItemStack.AddStructureConverter(v2514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		tag, ok := data.GetMap("tag")
		if !ok {
			return nil
		}
		if mods, ok := tag.GetList("AttributeModifiers"); ok {
			eachMap(mods, func(mod types.Map) {
				uuidconv.ReplaceLeastMost(mod, "UUID", "UUID")
			})
		}
		if owner, ok := tag.GetMap("SkullOwner"); ok {
			uuidconv.ReplaceString(owner, "Id", "Id")
		}
		return nil
	})

	r.TileEntity.AddConverterForID("minecraft:skull", v2514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		owner, ok := data.GetMap("Owner")
		if !ok {
			return nil
		}
		data.Remove("Owner")
		uuidconv.ReplaceString(owner, "Id", "Id")
		data.SetMap("SkullOwner", owner)
		return nil
	})
	r.TileEntity.AddConverterForID("minecraft:conduit", v2514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		uuidconv.ReplaceML(data, "target_uuid", "Target")
		return nil
	})

	r.Level.AddStructureConverter(v2514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		uuidconv.ReplaceString(data, "WanderingTraderId", "WanderingTraderId")
		events, ok := walk.Path(data, "CustomBossEvents")
		if !ok {
			return nil
		}
		for _, key := range events.Keys() {
			event, ok := events.GetMap(key)
			if !ok {
				continue
			}
			players, ok := event.GetList("Players")
			if !ok {
				continue
			}
			out := data.Factory().NewList()
			eachMap(players, func(p types.Map) {
				most, _ := p.GetLong("M")
				least, _ := p.GetLong("L")
				if v, ok := uuidconv.FromLongs(most, least); ok {
					out.Add(v)
				}
			})
			event.SetList("Players", out)
		}
		return nil
	})
}
