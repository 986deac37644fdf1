package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

var v1456 = datafix.V(1456)

// direction2DTo3D maps a horizontal facing (south, west, north, east) to the
// six way facing index.
func direction2DTo3D(d int8) int8 {
	switch d {
	case 0:
		return 3
	case 1:
		return 4
	case 3:
		return 5
	}
	return 2
}

func registerV1456(r *registry.Registry) {
	r.Entity.AddConverterForID("minecraft:item_frame", v1456, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		facing, _ := data.GetByte("Facing")
		data.SetByte("Facing", direction2DTo3D(facing))
		return nil
	})
}
