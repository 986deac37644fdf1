package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v2842 = datafix.V(2842)

var chunkLevelRenames = [][2]string{
	{"TileEntities", "block_entities"},
	{"TileTicks", "block_ticks"},
	{"Entities", "entities"},
	{"Sections", "sections"},
	{"Structures", "structures"},
	{"LiquidTicks", "fluid_ticks"},
}

// unwrapChunkLevel makes the Level compound the chunk root. Keys of the old
// root are kept unless Level has the same key.
func unwrapChunkLevel(data types.Map, _, _ datafix.DataVersion) types.Map {
	level, ok := data.GetMap("Level")
	if !ok {
		return nil
	}
	data.Remove("Level")
	for _, key := range data.Keys() {
		if level.HasKey(key) {
			continue
		}
		v, _ := data.Get(key)
		level.Set(key, v)
	}
	for _, rn := range chunkLevelRenames {
		level.RenameKey(rn[0], rn[1])
	}
	if structures, ok := level.GetMap("structures"); ok {
		structures.RenameKey("Starts", "starts")
	}
	return level
}

func registerV2842(r *registry.Registry) {
	r.Chunk.AddStructureConverter(v2842, unwrapChunkLevel)

	r.Chunk.AddStructureWalker(v2842, walk.Lists(r.Entity, "entities"))
	r.Chunk.AddStructureWalker(v2842, walk.Lists(r.TileEntity, "block_entities"))
	r.Chunk.AddStructureWalker(v2842, elementValues(r.BlockName, "block_ticks", "i"))
	r.Chunk.AddStructureWalker(v2842, func(data types.Map, from, to datafix.DataVersion) types.Map {
		sections, ok := data.GetList("sections")
		if !ok {
			return nil
		}
		eachMap(sections, func(section types.Map) {
			walk.ConvertListPath(r.BlockState, section, from, to, "block_states", "palette")
			if biomes, ok := walk.Path(section, "biomes"); ok {
				walk.ConvertValueList(r.Biome, biomes, "palette", from, to)
			}
		})
		return nil
	})
}
