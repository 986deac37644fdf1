package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

var v147 = datafix.V(147)

func registerV147(r *registry.Registry) {
	r.Entity.AddConverterForID("ArmorStand", v147, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		silent, _ := data.GetBool("Silent")
		marker, _ := data.GetBool("Marker")
		if silent && !marker {
			data.Remove("Silent")
		}
		return nil
	})
}
