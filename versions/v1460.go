package versions

import (
	"strings"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/resource"
	"github.com/xmdhs/datafixer/helpers/tables"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

var v1460 = datafix.V(1460)

var motives = tables.Table{
	"donkeykong":    "donkey_kong",
	"burningskull":  "burning_skull",
	"skullandroses": "skull_and_roses",
}

func registerV1460(r *registry.Registry) {
	r.Entity.AddConverterForID("minecraft:painting", v1460, stringKey("Motive", func(data types.Map, motive string) {
		motive = strings.ToLower(motive)
		if n, ok := motives.Lookup(motive); ok {
			motive = n
		}
		data.SetString("Motive", resource.CorrectNamespace(motive))
	}))
}
