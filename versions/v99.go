package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v99 = datafix.V(99)

// Ids as written before 1.11 namespaced them.
var (
	v99ContainerTiles = []string{"Furnace", "Chest", "Trap", "Dropper", "Hopper", "Cauldron"}
	v99Minecarts      = []string{"MinecartRideable", "MinecartChest", "MinecartFurnace", "MinecartTNT", "MinecartSpawner", "MinecartHopper", "MinecartCommandBlock"}
)

func registerV99(r *registry.Registry) {
	registerV99Entities(r)
	registerV99TileEntities(r)

	r.ItemStack.AddStructureWalker(v99, at(walk.Chain(
		walk.Maps(r.Entity, "EntityTag"),
		walk.Maps(r.TileEntity, "BlockEntityTag"),
		valueLists(r.BlockName, "CanDestroy", "CanPlaceOn"),
	), "tag"))

	r.Chunk.AddStructureWalker(v99, at(walk.Chain(
		walk.Lists(r.Entity, "Entities"),
		walk.Lists(r.TileEntity, "TileEntities"),
		elementValues(r.BlockName, "TileTicks", "i"),
	), "Level"))
	r.EntityChunk.AddStructureWalker(v99, walk.Lists(r.Entity, "Entities"))

	r.Player.AddStructureWalker(v99, walk.Lists(r.ItemStack, "Inventory", "EnderItems"))
	r.Player.AddStructureWalker(v99, walk.Maps(r.Entity, "Riding"))
	r.Level.AddStructureWalker(v99, walk.Maps(r.Player, "Player"))

	r.UntaggedSpawner.AddStructureWalker(v99, elementMaps(r.Entity, "SpawnPotentials", "Entity"))
	r.UntaggedSpawner.AddStructureWalker(v99, walk.Maps(r.Entity, "SpawnData"))

	r.HotBar.AddStructureWalker(v99, func(data types.Map, from, to datafix.DataVersion) types.Map {
		for _, key := range data.Keys() {
			walk.ConvertList(r.ItemStack, data, key, from, to)
		}
		return nil
	})

	r.Structure.AddStructureWalker(v99, elementMaps(r.Entity, "entities", "nbt"))
	r.Structure.AddStructureWalker(v99, elementMaps(r.TileEntity, "blocks", "nbt"))
	r.Structure.AddStructureWalker(v99, walk.Lists(r.BlockState, "palette"))

	r.SavedData.AddStructureWalker(v99, at(walk.Chain(
		walk.Lists(r.Objective, "Objectives"),
		walk.Lists(r.Team, "Teams"),
	), "data"))
}

func registerV99Entities(r *registry.Registry) {
	r.Entity.AddStructureWalker(v99, walk.Maps(r.Entity, "Riding"))
	r.Entity.AddStructureWalker(v99, walk.Lists(r.Entity, "Passengers"))
	r.Entity.AddStructureWalker(v99, walk.Lists(r.ItemStack, "Equipment"))

	r.Entity.AddWalker(v99, "Item", walk.Maps(r.ItemStack, "Item"))
	r.Entity.AddWalker(v99, "ItemFrame", walk.Maps(r.ItemStack, "Item"))
	r.Entity.AddWalker(v99, "ThrownPotion", walk.Maps(r.ItemStack, "Potion"))
	r.Entity.AddWalker(v99, "FallingSand", walk.Maps(r.TileEntity, "TileEntityData"))
	r.Entity.AddWalker(v99, "FallingSand", walk.Values(r.BlockName, "Block"))
	r.Entity.AddWalker(v99, "Enderman", walk.Values(r.BlockName, "carried"))
	r.Entity.AddWalker(v99, "EntityHorse", walk.Lists(r.ItemStack, "Items"))
	r.Entity.AddWalker(v99, "EntityHorse", walk.Maps(r.ItemStack, "ArmorItem", "SaddleItem"))
	r.Entity.AddWalker(v99, "Villager", walk.Lists(r.ItemStack, "Inventory"))
	r.Entity.AddWalker(v99, "Villager", at(walk.Chain(
		elementMaps(r.ItemStack, "Recipes", "buy"),
		elementMaps(r.ItemStack, "Recipes", "buyB"),
		elementMaps(r.ItemStack, "Recipes", "sell"),
	), "Offers"))

	for _, id := range v99Minecarts {
		r.Entity.AddWalker(v99, id, walk.Values(r.BlockName, "DisplayTile"))
	}
	r.Entity.AddWalker(v99, "MinecartChest", walk.Lists(r.ItemStack, "Items"))
	r.Entity.AddWalker(v99, "MinecartHopper", walk.Lists(r.ItemStack, "Items"))
	r.Entity.AddWalker(v99, "MinecartSpawner", convertSelf(r.UntaggedSpawner))
}

func registerV99TileEntities(r *registry.Registry) {
	for _, id := range v99ContainerTiles {
		r.TileEntity.AddWalker(v99, id, walk.Lists(r.ItemStack, "Items"))
	}
	r.TileEntity.AddWalker(v99, "RecordPlayer", walk.Maps(r.ItemStack, "RecordItem"))
	r.TileEntity.AddWalker(v99, "FlowerPot", walk.Values(r.ItemName, "Item"))
	r.TileEntity.AddWalker(v99, "MobSpawner", convertSelf(r.UntaggedSpawner))
	r.TileEntity.AddWalker(v99, "Piston", walk.Values(r.BlockName, "blockId"))
}
