package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v100 = datafix.V(100)

func registerV100(r *registry.Registry) {
	r.Entity.AddStructureConverter(v100, splitEquipment)

	r.Entity.AddStructureWalker(v100, walk.Maps(r.Entity, "Riding"))
	r.Entity.AddStructureWalker(v100, walk.Lists(r.Entity, "Passengers"))
	r.Entity.AddStructureWalker(v100, walk.Lists(r.ItemStack, "ArmorItems", "HandItems"))
}

// splitEquipment moves Equipment[0] to the main hand and Equipment[1:5] to
// the armor slots, and DropChances the same way.
func splitEquipment(data types.Map, _, _ datafix.DataVersion) types.Map {
	f := data.Factory()

	if equipment, ok := data.GetList("Equipment"); ok {
		data.Remove("Equipment")
		if equipment.Size() > 0 && !data.HasKey("HandItems") {
			hand := f.NewList()
			if m, ok := equipment.GetMap(0); ok {
				hand.AddMap(m)
			} else {
				hand.AddMap(f.NewMap())
			}
			hand.AddMap(f.NewMap())
			data.SetList("HandItems", hand)
		}
		if equipment.Size() > 1 && !data.HasKey("ArmorItems") {
			armor := f.NewList()
			for i := 1; i < equipment.Size() && i < 5; i++ {
				if m, ok := equipment.GetMap(i); ok {
					armor.AddMap(m)
				} else {
					armor.AddMap(f.NewMap())
				}
			}
			data.SetList("ArmorItems", armor)
		}
	}

	if chances, ok := data.GetList("DropChances"); ok {
		data.Remove("DropChances")
		if chances.Size() > 0 && !data.HasKey("HandDropChances") {
			hand := f.NewList()
			c, _ := chances.GetDouble(0)
			hand.AddFloat(float32(c))
			hand.AddFloat(0)
			data.SetList("HandDropChances", hand)
		}
		if chances.Size() > 1 && !data.HasKey("ArmorDropChances") {
			armor := f.NewList()
			for i := 1; i < chances.Size() && i < 5; i++ {
				c, _ := chances.GetDouble(i)
				armor.AddFloat(float32(c))
			}
			data.SetList("ArmorDropChances", armor)
		}
	}
	return nil
}
