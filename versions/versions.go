// Package versions holds the rules of every data version: the converters
// that rewrite values and the walkers that find nested typed values.
//
// Rules are registered in version order into a registry.Registry.
package versions

import (
	"sync"

	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/registry"
)

// Latest is the newest version any rule is registered at.
var Latest = datafix.V(3807)

// Default returns the process wide registry with every rule registered. It
// is built on first call.
var Default = sync.OnceValue(func() *registry.Registry {
	r := registry.New()
	Register(r)
	return r
})

// Register adds all rules to r. It must be called once per registry.
func Register(r *registry.Registry) {
	registerV99(r)
	registerV100(r)
	registerV102(r)
	registerV147(r)
	registerV165(r)
	registerV704(r)
	registerV705(r)
	registerV1451(r)
	registerV1456(r)
	registerV1458(r)
	registerV1460(r)
	registerV1514(r)
	registerV1803(r)
	registerV1925(r)
	registerV1955(r)
	registerV2514(r)
	registerV2523(r)
	registerV2831(r)
	registerV2842(r)
	registerV3807(r)
}
