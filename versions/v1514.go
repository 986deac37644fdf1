package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/helpers/text"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
)

var v1514 = datafix.V(1514)

func displayNameToComponent(data types.Map, name string) {
	data.SetString("DisplayName", text.Plain(name))
}

func registerV1514(r *registry.Registry) {
	r.Objective.AddStructureConverter(v1514, stringKey("DisplayName", displayNameToComponent))
	r.Objective.AddStructureConverter(v1514, func(data types.Map, _, _ datafix.DataVersion) types.Map {
		if data.HasKey("RenderType") {
			return nil
		}
		criteria, _ := data.GetString("CriteriaName")
		if criteria == "health" {
			data.SetString("RenderType", "hearts")
		} else {
			data.SetString("RenderType", "integer")
		}
		return nil
	})

	r.Team.AddStructureConverter(v1514, stringKey("DisplayName", displayNameToComponent))
}
