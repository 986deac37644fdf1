package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/rename"
	"github.com/xmdhs/datafixer/helpers/tables"
	"github.com/xmdhs/datafixer/registry"
)

var v705 = datafix.V(705)

var entityIDs = tables.Table{
	"AreaEffectCloud":      "minecraft:area_effect_cloud",
	"ArmorStand":           "minecraft:armor_stand",
	"Arrow":                "minecraft:arrow",
	"Bat":                  "minecraft:bat",
	"Blaze":                "minecraft:blaze",
	"Boat":                 "minecraft:boat",
	"CaveSpider":           "minecraft:cave_spider",
	"Chicken":              "minecraft:chicken",
	"Cow":                  "minecraft:cow",
	"Creeper":              "minecraft:creeper",
	"EnderDragon":          "minecraft:ender_dragon",
	"Enderman":             "minecraft:enderman",
	"Endermite":            "minecraft:endermite",
	"EntityHorse":          "minecraft:horse",
	"FallingSand":          "minecraft:falling_block",
	"Ghast":                "minecraft:ghast",
	"Giant":                "minecraft:giant",
	"Item":                 "minecraft:item",
	"ItemFrame":            "minecraft:item_frame",
	"LavaSlime":            "minecraft:magma_cube",
	"MinecartChest":        "minecraft:chest_minecart",
	"MinecartCommandBlock": "minecraft:commandblock_minecart",
	"MinecartFurnace":      "minecraft:furnace_minecart",
	"MinecartHopper":       "minecraft:hopper_minecart",
	"MinecartRideable":     "minecraft:minecart",
	"MinecartSpawner":      "minecraft:spawner_minecart",
	"MinecartTNT":          "minecraft:tnt_minecart",
	"MushroomCow":          "minecraft:mooshroom",
	"Ozelot":               "minecraft:ocelot",
	"Painting":             "minecraft:painting",
	"Pig":                  "minecraft:pig",
	"PigZombie":            "minecraft:zombie_pigman",
	"PolarBear":            "minecraft:polar_bear",
	"Sheep":                "minecraft:sheep",
	"Shulker":              "minecraft:shulker",
	"Skeleton":             "minecraft:skeleton",
	"Slime":                "minecraft:slime",
	"Spider":               "minecraft:spider",
	"Squid":                "minecraft:squid",
	"ThrownPotion":         "minecraft:potion",
	"Villager":             "minecraft:villager",
	"VillagerGolem":        "minecraft:villager_golem",
	"Witch":                "minecraft:witch",
	"Wolf":                 "minecraft:wolf",
	"Zombie":               "minecraft:zombie",
}

func registerV705(r *registry.Registry) {
	rename.Entities(r, v705, rename.FromTable(entityIDs))
	for old, id := range entityIDs {
		r.Entity.CopyWalkers(v705, old, id)
	}
}
