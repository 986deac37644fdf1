package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/tables"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v2523 = datafix.V(2523)

var attributeNames = tables.Table{
	"generic.maxHealth":           "minecraft:generic.max_health",
	"Max Health":                  "minecraft:generic.max_health",
	"zombie.spawnReinforcements":  "minecraft:zombie.spawn_reinforcements",
	"Spawn Reinforcements Chance": "minecraft:zombie.spawn_reinforcements",
	"horse.jumpStrength":          "minecraft:horse.jump_strength",
	"Jump Strength":               "minecraft:horse.jump_strength",
	"generic.followRange":         "minecraft:generic.follow_range",
	"Follow Range":                "minecraft:generic.follow_range",
	"generic.knockbackResistance": "minecraft:generic.knockback_resistance",
	"Knockback Resistance":        "minecraft:generic.knockback_resistance",
	"generic.movementSpeed":       "minecraft:generic.movement_speed",
	"Movement Speed":              "minecraft:generic.movement_speed",
	"generic.flyingSpeed":         "minecraft:generic.flying_speed",
	"Flying Speed":                "minecraft:generic.flying_speed",
	"generic.attackDamage":        "minecraft:generic.attack_damage",
	"generic.attackKnockback":     "minecraft:generic.attack_knockback",
	"generic.attackSpeed":         "minecraft:generic.attack_speed",
	"generic.armorToughness":      "minecraft:generic.armor_toughness",
}

func renameAttributes(data types.Map, listKey, nameKey string) {
	l, ok := data.GetList(listKey)
	if !ok {
		return
	}
	eachMap(l, func(attr types.Map) {
		name, ok := attr.GetString(nameKey)
		if !ok {
			return
		}
		if n, ok := attributeNames.Lookup(name); ok {
			attr.SetString(nameKey, n)
		}
	})
}

func registerV2523(r *registry.Registry) {
	living := func(data types.Map, _, _ datafix.DataVersion) types.Map {
		renameAttributes(data, "Attributes", "Name")
		return nil
	}
	r.Entity.AddStructureConverter(v2523, living)
	r.Player.AddStructureConverter(v2523, living)

	r.ItemStack.AddStructureConverter(v2523, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		if tag, ok := walk.Path(data, "tag"); ok {
			renameAttributes(tag, "AttributeModifiers", "AttributeName")
		}
		return nil
	})
}
