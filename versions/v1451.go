package versions

import (
	"strconv"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/resource"
	"github.com/xmdhs/datafixer/helpers/tables"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var (
	v1451      = datafix.V(1451)
	v1451Step3 = datafix.VS(1451, 3)
	v1451Step4 = datafix.VS(1451, 4)
)

type blockState struct {
	name  string
	props map[string]string
}

func (b blockState) build(f types.Factory) types.Map {
	m := f.NewMap()
	m.SetString("Name", b.name)
	if len(b.props) > 0 {
		p := f.NewMap()
		for k, v := range b.props {
			p.SetString(k, v)
		}
		m.SetMap("Properties", p)
	}
	return m
}

var airState = blockState{name: "minecraft:air"}

var legacyBlockIDs = tables.NewLazy(func() map[string]int32 {
	return map[string]int32{
		"minecraft:air":         0,
		"minecraft:stone":       1,
		"minecraft:grass":       2,
		"minecraft:dirt":        3,
		"minecraft:cobblestone": 4,
		"minecraft:planks":      5,
		"minecraft:sand":        12,
		"minecraft:gravel":      13,
		"minecraft:wool":        35,
		"minecraft:chest":       54,
	}
})

var colors = []string{
	"white", "orange", "magenta", "light_blue", "yellow", "lime", "pink", "gray",
	"light_gray", "cyan", "purple", "blue", "brown", "green", "red", "black",
}

var woods = []string{"oak", "spruce", "birch", "jungle", "acacia", "dark_oak"}

// flatBlocks is keyed by id<<4 | data.
var flatBlocks = tables.NewLazy(func() map[int32]blockState {
	m := map[int32]blockState{0: airState}
	for i, name := range []string{"stone", "granite", "polished_granite", "diorite", "polished_diorite", "andesite", "polished_andesite"} {
		m[1<<4|int32(i)] = blockState{name: "minecraft:" + name}
	}
	m[2<<4] = blockState{name: "minecraft:grass_block", props: map[string]string{"snowy": "false"}}
	m[3<<4] = blockState{name: "minecraft:dirt"}
	m[3<<4|1] = blockState{name: "minecraft:coarse_dirt"}
	m[3<<4|2] = blockState{name: "minecraft:podzol", props: map[string]string{"snowy": "false"}}
	m[4<<4] = blockState{name: "minecraft:cobblestone"}
	for i, wood := range woods {
		m[5<<4|int32(i)] = blockState{name: "minecraft:" + wood + "_planks"}
	}
	m[12<<4] = blockState{name: "minecraft:sand"}
	m[12<<4|1] = blockState{name: "minecraft:red_sand"}
	m[13<<4] = blockState{name: "minecraft:gravel"}
	for i, c := range colors {
		m[35<<4|int32(i)] = blockState{name: "minecraft:" + c + "_wool"}
	}
	for i, facing := range []string{"north", "south", "west", "east"} {
		m[54<<4|int32(i+2)] = blockState{name: "minecraft:chest", props: map[string]string{
			"facing": facing, "type": "single", "waterlogged": "false",
		}}
	}
	m[54<<4] = m[54<<4|2]
	return m
})

// legacyBlockState resolves a numeric or named block with its data value.
// Unknown data falls back to the block's default, unknown blocks to air.
func legacyBlockState(f types.Factory, block any, data int32) types.Map {
	var id int32
	if s, ok := block.(string); ok {
		id = legacyBlockIDs.Get()[resource.CorrectNamespace(s)]
	} else if n, ok := types.AsInt32(block); ok {
		id = n
	}
	if id < 0 || id > 4095 {
		return airState.build(f)
	}
	states := flatBlocks.Get()
	if st, ok := states[id<<4|data&15]; ok {
		return st.build(f)
	}
	if st, ok := states[id<<4]; ok {
		return st.build(f)
	}
	return airState.build(f)
}

var flatItems = tables.NewLazy(func() tables.Table {
	t := tables.Table{
		"minecraft:grass.0":        "minecraft:grass_block",
		"minecraft:dirt.0":         "minecraft:dirt",
		"minecraft:dirt.1":         "minecraft:coarse_dirt",
		"minecraft:dirt.2":         "minecraft:podzol",
		"minecraft:sand.0":         "minecraft:sand",
		"minecraft:sand.1":         "minecraft:red_sand",
		"minecraft:coal.0":         "minecraft:coal",
		"minecraft:coal.1":         "minecraft:charcoal",
		"minecraft:golden_apple.0": "minecraft:golden_apple",
		"minecraft:golden_apple.1": "minecraft:enchanted_golden_apple",
		"minecraft:dye.0":          "minecraft:ink_sac",
		"minecraft:dye.1":          "minecraft:rose_red",
		"minecraft:dye.2":          "minecraft:cactus_green",
		"minecraft:dye.3":          "minecraft:cocoa_beans",
		"minecraft:dye.4":          "minecraft:lapis_lazuli",
		"minecraft:dye.15":         "minecraft:bone_meal",
	}
	for i, name := range []string{"stone", "granite", "polished_granite", "diorite", "polished_diorite", "andesite", "polished_andesite"} {
		t["minecraft:stone."+strconv.Itoa(i)] = "minecraft:" + name
	}
	for i, wood := range woods {
		t["minecraft:planks."+strconv.Itoa(i)] = "minecraft:" + wood + "_planks"
	}
	for i, wood := range woods[:4] {
		t["minecraft:log."+strconv.Itoa(i)] = "minecraft:" + wood + "_log"
	}
	for i, c := range colors {
		t["minecraft:wool."+strconv.Itoa(i)] = "minecraft:" + c + "_wool"
	}
	for i, name := range []string{"skeleton_skull", "wither_skeleton_skull", "zombie_head", "player_head", "creeper_head", "dragon_head"} {
		t["minecraft:skull."+strconv.Itoa(i)] = "minecraft:" + name
	}
	return t
})

var damageableItems = tables.NewSet(
	"bow", "fishing_rod", "flint_and_steel", "shears", "shield", "elytra", "carrot_on_a_stick",
	"wooden_sword", "stone_sword", "iron_sword", "golden_sword", "diamond_sword",
	"wooden_pickaxe", "stone_pickaxe", "iron_pickaxe", "golden_pickaxe", "diamond_pickaxe",
	"wooden_shovel", "stone_shovel", "iron_shovel", "golden_shovel", "diamond_shovel",
	"wooden_axe", "stone_axe", "iron_axe", "golden_axe", "diamond_axe",
	"wooden_hoe", "stone_hoe", "iron_hoe", "golden_hoe", "diamond_hoe",
	"leather_helmet", "leather_chestplate", "leather_leggings", "leather_boots",
	"chainmail_helmet", "chainmail_chestplate", "chainmail_leggings", "chainmail_boots",
	"iron_helmet", "iron_chestplate", "iron_leggings", "iron_boots",
	"golden_helmet", "golden_chestplate", "golden_leggings", "golden_boots",
	"diamond_helmet", "diamond_chestplate", "diamond_leggings", "diamond_boots",
)

// flattenItem returns the id that replaces id at the given damage. Damage
// without an entry of its own uses the entry for damage 0.
func flattenItem(id string, damage int32) (string, bool) {
	t := flatItems.Get()
	if n, ok := t.Lookup(id + "." + strconv.Itoa(int(damage))); ok {
		return n, true
	}
	return t.Lookup(id + ".0")
}

var legacyMinecarts = []string{
	"minecraft:minecart", "minecraft:chest_minecart", "minecraft:furnace_minecart", "minecraft:tnt_minecart",
	"minecraft:spawner_minecart", "minecraft:hopper_minecart", "minecraft:commandblock_minecart",
}

func registerV1451(r *registry.Registry) {
	r.Chunk.AddStructureWalker(v1451, at(walk.Chain(
		walk.Lists(r.Entity, "Entities"),
		walk.Lists(r.TileEntity, "TileEntities"),
		elementValues(r.BlockName, "TileTicks", "i"),
	), "Level"))
	r.Chunk.AddStructureWalker(v1451, at(func(data types.Map, from, to datafix.DataVersion) types.Map {
		l, ok := data.GetList("Sections")
		if !ok {
			return nil
		}
		eachMap(l, func(section types.Map) {
			walk.ConvertList(r.BlockState, section, "Palette", from, to)
		})
		return nil
	}, "Level"))

	registerV1451Step3(r)
	registerV1451Step4(r)
}

func registerV1451Step3(r *registry.Registry) {
	r.Entity.AddConverterForID("minecraft:falling_block", v1451Step3, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		block, ok := data.Get("Block")
		if !ok {
			block, _ = data.Get("TileID")
		}
		blockData, _ := data.GetInt("Data")
		data.Remove("Block")
		data.Remove("Data")
		data.Remove("TileID")
		data.SetMap("BlockState", legacyBlockState(data.Factory(), block, blockData))
		return nil
	})

	for _, id := range legacyMinecarts {
		r.Entity.AddConverterForID(id, v1451Step3, func(data types.Map, _, _ datafix.DataVersion) types.Map {
			block, ok := data.Get("DisplayTile")
			if !ok {
				return nil
			}
			blockData, _ := data.GetInt("DisplayData")
			data.Remove("DisplayTile")
			data.Remove("DisplayData")
			data.SetMap("DisplayState", legacyBlockState(data.Factory(), block, blockData))
			return nil
		})
	}

	r.Entity.AddConverterForID("minecraft:enderman", v1451Step3, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		block, ok := data.Get("carried")
		if !ok {
			return nil
		}
		blockData, _ := data.GetInt("carriedData")
		data.Remove("carried")
		data.Remove("carriedData")
		state := legacyBlockState(data.Factory(), block, blockData)
		if name, _ := state.GetString("Name"); name != airState.name {
			data.SetMap("carriedBlockState", state)
		}
		return nil
	})

	r.Entity.AddWalker(v1451Step3, "minecraft:falling_block", walk.Maps(r.BlockState, "BlockState"))
	r.Entity.AddWalker(v1451Step3, "minecraft:falling_block", walk.Maps(r.TileEntity, "TileEntityData"))
	r.Entity.AddWalker(v1451Step3, "minecraft:enderman", walk.Maps(r.BlockState, "carriedBlockState"))
	for _, id := range legacyMinecarts {
		r.Entity.AddWalker(v1451Step3, id, walk.Maps(r.BlockState, "DisplayState"))
	}
	r.Entity.AddWalker(v1451Step3, "minecraft:chest_minecart", walk.Lists(r.ItemStack, "Items"))
	r.Entity.AddWalker(v1451Step3, "minecraft:hopper_minecart", walk.Lists(r.ItemStack, "Items"))
	r.Entity.AddWalker(v1451Step3, "minecraft:spawner_minecart", convertSelf(r.UntaggedSpawner))
}

func registerV1451Step4(r *registry.Registry) {
	r.ItemStack.AddStructureConverter(v1451Step4, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		id, ok := data.GetString("id")
		if !ok {
			return nil
		}
		damage, _ := data.GetInt("Damage")
		if n, ok := flattenItem(id, damage); ok {
			id = n
			data.SetString("id", id)
		}
		if damage != 0 && damageableItems.Has(id) {
			getOrCreateMap(data, "tag").SetInt("Damage", damage)
		}
		data.Remove("Damage")
		return nil
	})
}
