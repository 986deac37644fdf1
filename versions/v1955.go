package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

var v1955 = datafix.V(1955)

var villagerLevelXp = []int32{0, 10, 50, 100, 150}

// minXpForLevel clamps level to the table, so level 0 and level 9 are both
// valid inputs.
func minXpForLevel(level int32) int32 {
	i := level - 1
	if i < 0 {
		i = 0
	}
	if last := int32(len(villagerLevelXp) - 1); i > last {
		i = last
	}
	return villagerLevelXp[i]
}

func addVillagerXp(data types.Map) {
	level := int32(1)
	if vd, ok := data.GetMap("VillagerData"); ok {
		if l, ok := vd.GetInt("level"); ok {
			level = l
		}
	}
	if !data.HasKeyOfType("Xp", types.ObjectTypeNumber) {
		data.SetInt("Xp", minXpForLevel(level))
	}
}

func registerV1955(r *registry.Registry) {
	r.Entity.AddConverterForID("minecraft:villager", v1955, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		vd := getOrCreateMap(data, "VillagerData")
		if l, ok := vd.GetInt("level"); !ok || l == 0 {
			vd.SetInt("level", 1)
		}
		addVillagerXp(data)
		return nil
	})

	r.Entity.AddConverterForID("minecraft:zombie_villager", v1955, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		addVillagerXp(data)
		return nil
	})
}
