package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/rename"
	"github.com/xmdhs/datafixer/helpers/tables"
	"github.com/xmdhs/datafixer/registry"
)

var v704 = datafix.V(704)

var tileEntityIDs = tables.Table{
	"Airportal":    "minecraft:end_portal",
	"Banner":       "minecraft:banner",
	"Beacon":       "minecraft:beacon",
	"Cauldron":     "minecraft:brewing_stand",
	"Chest":        "minecraft:chest",
	"Comparator":   "minecraft:comparator",
	"Control":      "minecraft:command_block",
	"DLDetector":   "minecraft:daylight_detector",
	"Dropper":      "minecraft:dropper",
	"EnchantTable": "minecraft:enchanting_table",
	"EndGateway":   "minecraft:end_gateway",
	"EnderChest":   "minecraft:ender_chest",
	"FlowerPot":    "minecraft:flower_pot",
	"Furnace":      "minecraft:furnace",
	"Hopper":       "minecraft:hopper",
	"MobSpawner":   "minecraft:mob_spawner",
	"Music":        "minecraft:noteblock",
	"Piston":       "minecraft:piston",
	"RecordPlayer": "minecraft:jukebox",
	"Sign":         "minecraft:sign",
	"Skull":        "minecraft:skull",
	"Structure":    "minecraft:structure_block",
	"Trap":         "minecraft:dispenser",
}

func registerV704(r *registry.Registry) {
	rename.TileEntities(r, v704, rename.FromTable(tileEntityIDs))
	for old, id := range tileEntityIDs {
		r.TileEntity.CopyWalkers(v704, old, id)
	}
}
