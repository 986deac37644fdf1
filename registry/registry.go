// Package registry holds the named data types of the game's save format.
//
// A Registry is built once, filled by rule registration, and then only read.
package registry

import (
	"sort"

	"github.com/xmdhs/datafixer/datafix"
)

// Type names as used by Lookup and the command line.
const (
	TypeLevel            = "level"
	TypePlayer           = "player"
	TypeChunk            = "chunk"
	TypeEntityChunk      = "entity_chunk"
	TypePoiChunk         = "poi_chunk"
	TypeHotBar           = "hotbar"
	TypeOptions          = "options"
	TypeStructure        = "structure"
	TypeStats            = "stats"
	TypeSavedData        = "saved_data"
	TypeAdvancements     = "advancements"
	TypeStructureFeature = "structure_feature"
	TypeObjective        = "objective"
	TypeTeam             = "team"
	TypeUntaggedSpawner  = "untagged_spawner"
	TypeWorldGenSettings = "world_gen_settings"
	TypeTileEntity       = "tile_entity"
	TypeItemStack        = "item_stack"
	TypeEntity           = "entity"
	TypeBlockState       = "block_state"
	TypeEntityName       = "entity_name"
	TypeItemName         = "item_name"
	TypeBlockName        = "block_name"
	TypeBiome            = "biome"
	TypeTextComponent    = "text_component"
)

type Registry struct {
	Level            *datafix.MapDataType
	Player           *datafix.MapDataType
	Chunk            *datafix.MapDataType
	EntityChunk      *datafix.MapDataType
	PoiChunk         *datafix.MapDataType
	HotBar           *datafix.MapDataType
	Options          *datafix.MapDataType
	Structure        *datafix.MapDataType
	Stats            *datafix.MapDataType
	SavedData        *datafix.MapDataType
	Advancements     *datafix.MapDataType
	StructureFeature *datafix.MapDataType
	Objective        *datafix.MapDataType
	Team             *datafix.MapDataType
	UntaggedSpawner  *datafix.MapDataType
	WorldGenSettings *datafix.MapDataType

	TileEntity *datafix.IDDataType
	ItemStack  *datafix.IDDataType
	Entity     *datafix.IDDataType
	BlockState *datafix.IDDataType

	EntityName    *datafix.ValueDataType
	ItemName      *datafix.ValueDataType
	BlockName     *datafix.ValueDataType
	Biome         *datafix.ValueDataType
	TextComponent *datafix.ValueDataType

	byName map[string]datafix.DataType
}

// New returns a registry with every data type present and no rules.
func New() *Registry {
	r := &Registry{
		Level:            datafix.NewMapDataType(TypeLevel),
		Player:           datafix.NewMapDataType(TypePlayer),
		Chunk:            datafix.NewMapDataType(TypeChunk),
		EntityChunk:      datafix.NewMapDataType(TypeEntityChunk),
		PoiChunk:         datafix.NewMapDataType(TypePoiChunk),
		HotBar:           datafix.NewMapDataType(TypeHotBar),
		Options:          datafix.NewMapDataType(TypeOptions),
		Structure:        datafix.NewMapDataType(TypeStructure),
		Stats:            datafix.NewMapDataType(TypeStats),
		SavedData:        datafix.NewMapDataType(TypeSavedData),
		Advancements:     datafix.NewMapDataType(TypeAdvancements),
		StructureFeature: datafix.NewMapDataType(TypeStructureFeature),
		Objective:        datafix.NewMapDataType(TypeObjective),
		Team:             datafix.NewMapDataType(TypeTeam),
		UntaggedSpawner:  datafix.NewMapDataType(TypeUntaggedSpawner),
		WorldGenSettings: datafix.NewMapDataType(TypeWorldGenSettings),

		TileEntity: datafix.NewIDDataType(TypeTileEntity, "id"),
		ItemStack:  datafix.NewIDDataType(TypeItemStack, "id"),
		Entity:     datafix.NewIDDataType(TypeEntity, "id"),
		BlockState: datafix.NewIDDataType(TypeBlockState, "Name"),

		EntityName:    datafix.NewValueDataType(TypeEntityName),
		ItemName:      datafix.NewValueDataType(TypeItemName),
		BlockName:     datafix.NewValueDataType(TypeBlockName),
		Biome:         datafix.NewValueDataType(TypeBiome),
		TextComponent: datafix.NewValueDataType(TypeTextComponent),
	}

	all := []datafix.DataType{
		r.Level, r.Player, r.Chunk, r.EntityChunk, r.PoiChunk, r.HotBar,
		r.Options, r.Structure, r.Stats, r.SavedData, r.Advancements,
		r.StructureFeature, r.Objective, r.Team, r.UntaggedSpawner,
		r.WorldGenSettings, r.TileEntity, r.ItemStack, r.Entity, r.BlockState,
		r.EntityName, r.ItemName, r.BlockName, r.Biome, r.TextComponent,
	}
	r.byName = make(map[string]datafix.DataType, len(all))
	for _, t := range all {
		r.byName[t.Name()] = t
	}
	return r
}

// Lookup returns the data type registered under name.
func (r *Registry) Lookup(name string) (datafix.DataType, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names lists every data type name in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type counter interface {
	Counts() (converters, walkers int)
}

// Counts sums registered converters and walkers over all types.
func (r *Registry) Counts() (converters, walkers int) {
	for _, t := range r.byName {
		if c, ok := t.(counter); ok {
			cv, w := c.Counts()
			converters += cv
			walkers += w
		}
	}
	return converters, walkers
}
