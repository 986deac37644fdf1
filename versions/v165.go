package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/text"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v165 = datafix.V(165)

func registerV165(r *registry.Registry) {
	r.ItemStack.AddConverterForID("minecraft:written_book", v165, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		tag, ok := walk.Path(data, "tag")
		if !ok {
			return nil
		}
		pages, ok := tag.GetList("pages")
		if !ok {
			return nil
		}
		for i := 0; i < pages.Size(); i++ {
			s, ok := pages.GetString(i)
			if !ok {
				continue
			}
			pages.Set(i, text.Repair(s))
		}
		return nil
	})
}
