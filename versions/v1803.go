package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/text"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v1803 = datafix.V(1803)

func registerV1803(r *registry.Registry) {
	r.ItemStack.AddStructureConverter(v1803, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		display, ok := walk.Path(data, "tag", "display")
		if !ok {
			return nil
		}
		lore, ok := display.GetList("Lore")
		if !ok {
			return nil
		}
		for i := 0; i < lore.Size(); i++ {
			if s, ok := lore.GetString(i); ok {
				lore.Set(i, text.Plain(s))
			}
		}
		return nil
	})
}
