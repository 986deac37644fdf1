package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

var v3807 = datafix.V(3807)

// blockPosToArray replaces an {X, Y, Z} compound with an int[3] under
// newKey. Compounds missing a coordinate are left alone.
func blockPosToArray(data types.Map, oldKey, newKey string) {
	pos, ok := data.GetMap(oldKey)
	if !ok {
		return
	}
	x, okX := pos.GetInt("X")
	y, okY := pos.GetInt("Y")
	z, okZ := pos.GetInt("Z")
	if !okX || !okY || !okZ {
		return
	}
	data.Remove(oldKey)
	data.SetIntArray(newKey, []int32{x, y, z})
}

func registerV3807(r *registry.Registry) {
	r.Entity.AddConverterForID("minecraft:bee", v3807, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		blockPosToArray(data, "HivePos", "hive_pos")
		blockPosToArray(data, "FlowerPos", "flower_pos")
		return nil
	})
	r.TileEntity.AddConverterForID("minecraft:end_gateway", v3807, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		blockPosToArray(data, "ExitPortal", "exit_portal")
		return nil
	})
}
