package versions

import (
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types"
	"github.com/xmdhs/datafixer/walk"
)

var v2831 = datafix.V(2831)

// reshapeSpawner turns {Entity, Weight} potentials into {data: {entity},
// weight} and wraps SpawnData as {entity: SpawnData}.
func reshapeSpawner(data types.Map, _, _ datafix.DataVersion) types.Map {
	f := data.Factory()
	if potentials, ok := data.GetList("SpawnPotentials"); ok {
		eachMap(potentials, func(p types.Map) {
			weight, ok := p.GetInt("Weight")
			if !ok {
				weight = 1
			}
			entity, ok := p.GetMap("Entity")
			if !ok {
				entity = f.NewMap()
			}
			p.Remove("Weight")
			p.Remove("Entity")

			wrapped := f.NewMap()
			wrapped.SetMap("entity", entity)
			p.SetMap("data", wrapped)
			p.SetInt("weight", weight)
		})
	}
	if spawnData, ok := data.GetMap("SpawnData"); ok {
		wrapped := f.NewMap()
		wrapped.SetMap("entity", spawnData)
		data.SetMap("SpawnData", wrapped)
	}
	return nil
}

func registerV2831(r *registry.Registry) {
	r.UntaggedSpawner.AddStructureConverter(v2831, reshapeSpawner)

	r.UntaggedSpawner.AddStructureWalker(v2831, elementMaps(r.Entity, "SpawnPotentials", "data", "entity"))
	r.UntaggedSpawner.AddStructureWalker(v2831, func(data types.Map, from, to datafix.DataVersion) types.Map {
		walk.ConvertMapPath(r.Entity, data, from, to, "SpawnData", "entity")
		return nil
	})
}
