package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/types/jsonv"
	"github.com/xmdhs/datafixer/types/nbt"
	"github.com/xmdhs/datafixer/walk"
)

type m = map[string]any

func tree(t *testing.T, v m) *nbt.Compound {
	t.Helper()
	c, err := nbt.CompoundFromNative(v)
	require.NoError(t, err)
	return c
}

func str(t *testing.T, data types.Map, path ...string) string {
	t.Helper()
	parent, ok := walk.Path(data, path[:len(path)-1]...)
	require.True(t, ok, "path %v", path)
	s, ok := parent.GetString(path[len(path)-1])
	require.True(t, ok, "path %v", path)
	return s
}

func listMap(t *testing.T, data types.Map, key string, i int) types.Map {
	t.Helper()
	l, ok := data.GetList(key)
	require.True(t, ok, key)
	e, ok := l.GetMap(i)
	require.True(t, ok, "%s[%d]", key, i)
	return e
}

func TestDefaultIsShared(t *testing.T) {
	r := Default()
	assert.Same(t, r, Default())
	converters, walkers := r.Counts()
	assert.Greater(t, converters, 0)
	assert.Greater(t, walkers, 0)
}

func TestEquipmentSplit(t *testing.T) {
	r := Default()
	items := make([]any, 5)
	for i := range items {
		items[i] = m{"id": int16(1), "Count": int8(1)}
	}
	e := tree(t, m{
		"id":          "Zombie",
		"Equipment":   items,
		"DropChances": []float32{0.1, 0.2, 0.3, 0.4, 0.5},
	})

	got := r.Entity.Convert(e, datafix.V(99), datafix.V(102))

	assert.False(t, got.HasKey("Equipment"))
	hand, _ := got.GetList("HandItems")
	armor, _ := got.GetList("ArmorItems")
	assert.Equal(t, 2, hand.Size())
	assert.Equal(t, 4, armor.Size())
	assert.Equal(t, "minecraft:stone", str(t, listMap(t, got, "HandItems", 0), "id"))
	assert.Equal(t, "minecraft:stone", str(t, listMap(t, got, "ArmorItems", 3), "id"))
	assert.True(t, listMap(t, got, "HandItems", 1).IsEmpty())

	chances, _ := got.GetList("ArmorDropChances")
	assert.Equal(t, 4, chances.Size())
	assert.Equal(t, float32(0.5), chances.Get(3))
}

func TestNumericItemIDs(t *testing.T) {
	r := Default()
	tests := []struct {
		name string
		item m
		want string
	}{
		{name: "known", item: m{"id": int16(264)}, want: "minecraft:diamond"},
		{name: "unknown", item: m{"id": int16(9999)}, want: "minecraft:air"},
		{name: "splash potion", item: m{"id": int16(373), "Damage": int16(16384)}, want: "minecraft:splash_potion"},
		{name: "potion", item: m{"id": int16(373), "Damage": int16(0)}, want: "minecraft:potion"},
		{name: "already named", item: m{"id": "minecraft:stick"}, want: "minecraft:stick"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ItemStack.Convert(tree(t, tt.item), datafix.V(99), datafix.V(102))
			assert.Equal(t, tt.want, str(t, got, "id"))
		})
	}
	assert.Equal(t, "minecraft:bow", r.ItemName.Convert(int16(261), datafix.V(99), datafix.V(102)))
}

func TestArmorStandSilent(t *testing.T) {
	r := Default()
	loud := r.Entity.Convert(tree(t, m{"id": "ArmorStand", "Silent": int8(1)}), datafix.V(146), datafix.V(147))
	assert.False(t, loud.HasKey("Silent"))

	marker := r.Entity.Convert(tree(t, m{"id": "ArmorStand", "Silent": int8(1), "Marker": int8(1)}), datafix.V(146), datafix.V(147))
	assert.True(t, marker.HasKey("Silent"))
}

func TestBookPages(t *testing.T) {
	r := Default()
	book := tree(t, m{
		"id":  "minecraft:written_book",
		"tag": m{"pages": []string{"hello", "{text:'hi'}", "", `"quoted"`}},
	})
	got := r.ItemStack.Convert(book, datafix.V(164), datafix.V(165))

	tag, _ := got.GetMap("tag")
	pages, _ := tag.GetList("pages")
	want := []string{`{"text":"hello"}`, `{"text":"hi"}`, `{"text":""}`, `{"text":"quoted"}`}
	for i, w := range want {
		assert.Equal(t, w, pages.Get(i), "page %d", i)
	}
}

func TestIDNamespacingKeepsWalkers(t *testing.T) {
	r := Default()

	chest := tree(t, m{"id": "Chest", "Items": []any{m{"id": int16(1), "Count": int8(3)}}})
	got := r.TileEntity.Convert(chest, datafix.V(99), datafix.V(705))
	assert.Equal(t, "minecraft:chest", str(t, got, "id"))
	assert.Equal(t, "minecraft:stone", str(t, listMap(t, got, "Items", 0), "id"))

	item := tree(t, m{"id": "Item", "Item": m{"id": int16(387)}})
	got = r.Entity.Convert(item, datafix.V(99), datafix.V(705))
	assert.Equal(t, "minecraft:item", str(t, got, "id"))
	assert.Equal(t, "minecraft:written_book", str(t, got, "Item", "id"))

	assert.Equal(t, "minecraft:zombie_pigman", r.EntityName.Convert("PigZombie", datafix.V(704), datafix.V(705)))
}

func TestFallingBlockFlattening(t *testing.T) {
	r := Default()
	tests := []struct {
		name  string
		block any
		data  int32
		want  string
	}{
		{name: "named", block: "minecraft:wool", data: 14, want: "minecraft:red_wool"},
		{name: "numeric", block: int32(1), data: 3, want: "minecraft:diorite"},
		{name: "unknown data", block: int32(1), data: 9, want: "minecraft:stone"},
		{name: "unknown block", block: int32(200), data: 0, want: "minecraft:air"},
		{name: "unnamespaced", block: "sand", data: 1, want: "minecraft:red_sand"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tree(t, m{"id": "minecraft:falling_block", "Block": tt.block, "Data": tt.data})
			got := r.Entity.Convert(e, datafix.V(1450), datafix.VS(1451, 3))
			assert.Equal(t, tt.want, str(t, got, "BlockState", "Name"))
			assert.False(t, got.HasKey("Block"))
			assert.False(t, got.HasKey("Data"))
		})
	}

	chest := r.Entity.Convert(tree(t, m{"id": "minecraft:chest_minecart", "DisplayTile": int32(54), "DisplayData": int32(5)}),
		datafix.V(1450), datafix.VS(1451, 3))
	assert.Equal(t, "east", str(t, chest, "DisplayState", "Properties", "facing"))
}

func TestItemFlattening(t *testing.T) {
	r := Default()
	tests := []struct {
		name       string
		item       m
		want       string
		wantDamage int32
	}{
		{name: "by damage", item: m{"id": "minecraft:wool", "Damage": int16(14)}, want: "minecraft:red_wool"},
		{name: "zero fallback", item: m{"id": "minecraft:wool", "Damage": int16(99)}, want: "minecraft:white_wool"},
		{name: "damageable", item: m{"id": "minecraft:bow", "Damage": int16(5)}, want: "minecraft:bow", wantDamage: 5},
		{name: "not damageable", item: m{"id": "minecraft:stick", "Damage": int16(3)}, want: "minecraft:stick"},
		{name: "no damage", item: m{"id": "minecraft:skull"}, want: "minecraft:skeleton_skull"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ItemStack.Convert(tree(t, tt.item), datafix.VS(1451, 3), datafix.VS(1451, 4))
			assert.Equal(t, tt.want, str(t, got, "id"))
			assert.False(t, got.HasKey("Damage"))
			tag, ok := got.GetMap("tag")
			if tt.wantDamage == 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			d, _ := tag.GetInt("Damage")
			assert.Equal(t, tt.wantDamage, d)
		})
	}
}

func TestItemFrameFacing(t *testing.T) {
	r := Default()
	for in, want := range map[int8]int8{0: 3, 1: 4, 2: 2, 3: 5} {
		e := tree(t, m{"id": "minecraft:item_frame", "Facing": in})
		got := r.Entity.Convert(e, datafix.V(1455), datafix.V(1456))
		f, _ := got.GetByte("Facing")
		assert.Equal(t, want, f, "facing %d", in)
	}
}

func TestTextComponents(t *testing.T) {
	r := Default()

	named := r.Entity.Convert(tree(t, m{"id": "minecraft:pig", "CustomName": "Bob"}), datafix.V(1457), datafix.V(1458))
	assert.Equal(t, `{"text":"Bob"}`, str(t, named, "CustomName"))

	unnamed := r.Entity.Convert(tree(t, m{"id": "minecraft:pig", "CustomName": ""}), datafix.V(1457), datafix.V(1458))
	assert.False(t, unnamed.HasKey("CustomName"))

	chest := r.TileEntity.Convert(tree(t, m{"id": "minecraft:chest", "CustomName": "Loot"}), datafix.V(1457), datafix.V(1458))
	assert.Equal(t, `{"text":"Loot"}`, str(t, chest, "CustomName"))

	item := tree(t, m{"id": "minecraft:stick", "tag": m{"display": m{"Name": "Wand", "Lore": []string{"a", "b"}}}})
	got := r.ItemStack.Convert(item, datafix.V(1457), datafix.V(1803))
	assert.Equal(t, `{"text":"Wand"}`, str(t, got, "tag", "display", "Name"))
	display, _ := walk.Path(got, "tag", "display")
	lore, _ := display.GetList("Lore")
	assert.Equal(t, `{"text":"b"}`, lore.Get(1))

	obj := r.Objective.Convert(tree(t, m{"DisplayName": "Deaths", "CriteriaName": "health"}), datafix.V(1513), datafix.V(1514))
	assert.Equal(t, `{"text":"Deaths"}`, str(t, obj, "DisplayName"))
	assert.Equal(t, "hearts", str(t, obj, "RenderType"))

	team := r.Team.Convert(tree(t, m{"DisplayName": "Red"}), datafix.V(1513), datafix.V(1514))
	assert.Equal(t, `{"text":"Red"}`, str(t, team, "DisplayName"))
}

func TestScoreboardThroughSavedData(t *testing.T) {
	r := Default()
	data := tree(t, m{"data": m{
		"Objectives": []any{m{"DisplayName": "Kills", "CriteriaName": "playerKillCount"}},
	}})
	got := r.SavedData.Convert(data, datafix.V(1500), datafix.V(1514))
	inner, _ := got.GetMap("data")
	obj := listMap(t, inner, "Objectives", 0)
	assert.Equal(t, `{"text":"Kills"}`, str(t, obj, "DisplayName"))
	assert.Equal(t, "integer", str(t, obj, "RenderType"))
}

func TestPaintingMotive(t *testing.T) {
	r := Default()
	got := r.Entity.Convert(tree(t, m{"id": "minecraft:painting", "Motive": "DonkeyKong"}), datafix.V(1459), datafix.V(1460))
	assert.Equal(t, "minecraft:donkey_kong", str(t, got, "Motive"))

	got = r.Entity.Convert(tree(t, m{"id": "minecraft:painting", "Motive": "Kebab"}), datafix.V(1459), datafix.V(1460))
	assert.Equal(t, "minecraft:kebab", str(t, got, "Motive"))
}

func TestTextBackgroundOpacity(t *testing.T) {
	r := Default()
	tests := []struct {
		in   string
		want string
	}{
		{in: "1.0", want: "0.5"},
		{in: "0.0", want: "0.05"},
		{in: "garbage", want: "0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := r.Options.Convert(tree(t, m{"chatOpacity": tt.in}), datafix.V(1924), datafix.V(1925))
			assert.Equal(t, tt.want, str(t, got, "textBackgroundOpacity"))
			assert.Equal(t, tt.in, str(t, got, "chatOpacity"))
		})
	}
	assert.Equal(t, "1.0", formatOptionDouble(1))
}

func TestVillagerXp(t *testing.T) {
	r := Default()
	tests := []struct {
		name string
		in   m
		want int32
	}{
		{name: "level 3", in: m{"VillagerData": m{"level": int32(3)}}, want: 50},
		{name: "level above table", in: m{"VillagerData": m{"level": int32(9)}}, want: 150},
		{name: "level 0", in: m{"VillagerData": m{"level": int32(0)}}, want: 0},
		{name: "no data", in: m{}, want: 0},
		{name: "keeps xp", in: m{"VillagerData": m{"level": int32(5)}, "Xp": int32(7)}, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in["id"] = "minecraft:villager"
			got := r.Entity.Convert(tree(t, tt.in), datafix.V(1954), datafix.V(1955))
			xp, ok := got.GetInt("Xp")
			require.True(t, ok)
			assert.Equal(t, tt.want, xp)
			vd, _ := got.GetMap("VillagerData")
			level, _ := vd.GetInt("level")
			assert.GreaterOrEqual(t, level, int32(1))
		})
	}
}

func TestUUIDs(t *testing.T) {
	r := Default()

	e := tree(t, m{"id": "minecraft:wolf", "UUIDMost": int64(1), "UUIDLeast": int64(2), "OwnerUUID": "not-a-uuid"})
	got := r.Entity.Convert(e, datafix.V(2513), datafix.V(2514))
	u, _ := got.GetIntArray("UUID")
	assert.Equal(t, []int32{0, 1, 0, 2}, u)
	assert.False(t, got.HasKey("UUIDMost"))
	assert.False(t, got.HasKey("OwnerUUID"))
	assert.False(t, got.HasKey("Owner"))

	zero := tree(t, m{"id": "minecraft:pig", "UUIDMost": int64(0), "UUIDLeast": int64(0)})
	got = r.Entity.Convert(zero, datafix.V(2513), datafix.V(2514))
	assert.False(t, got.HasKey("UUID"))

	owned := tree(t, m{"id": "minecraft:cat", "OwnerUUID": "00000000-0000-0001-0000-000000000002"})
	got = r.Entity.Convert(owned, datafix.V(2513), datafix.V(2514))
	o, _ := got.GetIntArray("Owner")
	assert.Equal(t, []int32{0, 1, 0, 2}, o)

	skull := tree(t, m{"id": "minecraft:skull", "Owner": m{"Id": "00000000-0000-0001-0000-000000000002", "Name": "x"}})
	got = r.TileEntity.Convert(skull, datafix.V(2513), datafix.V(2514))
	id, _ := walk.Path(got, "SkullOwner")
	ids, _ := id.GetIntArray("Id")
	assert.Equal(t, []int32{0, 1, 0, 2}, ids)
}

func TestAttributeRenames(t *testing.T) {
	r := Default()
	e := tree(t, m{"id": "minecraft:zombie", "Attributes": []any{
		m{"Name": "generic.maxHealth", "Base": 20.0},
		m{"Name": "modded.thing", "Base": 1.0},
	}})
	got := r.Entity.Convert(e, datafix.V(2522), datafix.V(2523))
	assert.Equal(t, "minecraft:generic.max_health", str(t, listMap(t, got, "Attributes", 0), "Name"))
	assert.Equal(t, "modded.thing", str(t, listMap(t, got, "Attributes", 1), "Name"))
}

func TestSpawnerReshape(t *testing.T) {
	r := Default()
	spawner := tree(t, m{
		"id":              "minecraft:mob_spawner",
		"SpawnPotentials": []any{m{"Entity": m{"id": "minecraft:pig"}, "Weight": int32(3)}, m{"Entity": m{"id": "minecraft:cow"}}},
		"SpawnData":       m{"id": "minecraft:pig"},
	})
	got := r.TileEntity.Convert(spawner, datafix.V(2830), datafix.V(2831))

	first := listMap(t, got, "SpawnPotentials", 0)
	assert.Equal(t, "minecraft:pig", str(t, first, "data", "entity", "id"))
	w, _ := first.GetInt("weight")
	assert.Equal(t, int32(3), w)
	assert.False(t, first.HasKey("Entity"))

	second := listMap(t, got, "SpawnPotentials", 1)
	w, _ = second.GetInt("weight")
	assert.Equal(t, int32(1), w)

	assert.Equal(t, "minecraft:pig", str(t, got, "SpawnData", "entity", "id"))
}

func TestChunkLevelUnwrap(t *testing.T) {
	r := Default()
	chunk := tree(t, m{
		"DataVersion": int32(1450),
		"xPos":        int32(5),
		"Level": m{
			"xPos":         int32(1),
			"Entities":     []any{m{"id": "minecraft:falling_block", "Block": "minecraft:sand", "Data": int32(1)}},
			"TileEntities": []any{m{"id": "minecraft:chest", "CustomName": "Box"}},
		},
	})

	got := r.Chunk.Convert(chunk, datafix.V(1450), datafix.V(2842))
	assert.NotSame(t, chunk, got, "root replaced")
	assert.False(t, got.HasKey("Level"))
	x, _ := got.GetInt("xPos")
	assert.Equal(t, int32(1), x, "level wins on duplicate keys")
	v, _ := got.GetInt("DataVersion")
	assert.Equal(t, int32(1450), v)

	assert.Equal(t, "minecraft:red_sand", str(t, listMap(t, got, "entities", 0), "BlockState", "Name"))
	assert.Equal(t, `{"text":"Box"}`, str(t, listMap(t, got, "block_entities", 0), "CustomName"))
}

func TestChunkWithoutLevel(t *testing.T) {
	r := Default()
	chunk := tree(t, m{"sections": []any{}})
	got := r.Chunk.Convert(chunk, datafix.V(2841), datafix.V(2842))
	assert.Same(t, chunk, got)
}

func TestBlockPosArrays(t *testing.T) {
	r := Default()
	bee := tree(t, m{"id": "minecraft:bee", "HivePos": m{"X": int32(1), "Y": int32(2), "Z": int32(3)}, "FlowerPos": m{"X": int32(1)}})
	got := r.Entity.Convert(bee, datafix.V(3806), datafix.V(3807))
	hive, _ := got.GetIntArray("hive_pos")
	assert.Equal(t, []int32{1, 2, 3}, hive)
	assert.False(t, got.HasKey("HivePos"))
	assert.True(t, got.HasKey("FlowerPos"), "incomplete positions stay")
}

func TestSplitRangeMatchesDirect(t *testing.T) {
	r := Default()
	build := func() *nbt.Compound {
		return tree(t, m{
			"id":         "Item",
			"CustomName": "drop",
			"Item":       m{"id": int16(35), "Damage": int16(14), "Count": int8(1)},
			"UUIDMost":   int64(5),
			"UUIDLeast":  int64(6),
		})
	}

	direct := r.Entity.Convert(build(), datafix.V(99), datafix.V(2842))
	stepped := r.Entity.Convert(build(), datafix.V(99), datafix.V(1000))
	stepped = r.Entity.Convert(stepped, datafix.V(1000), datafix.VS(1451, 3))
	stepped = r.Entity.Convert(stepped, datafix.VS(1451, 3), datafix.V(2842))

	assert.Equal(t, direct, stepped)
	assert.Equal(t, "minecraft:red_wool", str(t, direct, "Item", "id"))
}

func TestJSONFamily(t *testing.T) {
	r := Default()
	e, err := jsonv.ParseMap(`{"id":"Zombie","CustomName":"Bob","Equipment":[{"id":276}]}`)
	require.NoError(t, err)

	got := r.Entity.Convert(e, datafix.V(99), datafix.V(1458))
	assert.Equal(t, "minecraft:zombie", str(t, got, "id"))
	assert.Equal(t, `{"text":"Bob"}`, str(t, got, "CustomName"))
	assert.Equal(t, "minecraft:diamond_sword", str(t, listMap(t, got, "HandItems", 0), "id"))
}
