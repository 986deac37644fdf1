package datafix

import "github.com/xmdhs/datafixer/types"

var _ MapType = (*IDDataType)(nil)

// IDDataType is a map data type whose values carry an identity string, such
// as an entity or tile entity id, that selects extra converters and walkers.
type IDDataType struct {
	MapDataType
}

// NewIDDataType returns an empty chain that reads the identity from idKey,
// usually "id" ("Name" for block states).
func NewIDDataType(name, idKey string) *IDDataType {
	return &IDDataType{MapDataType: MapDataType{
		name:      name,
		idKey:     idKey,
		idWalkers: make(map[string]*floorMap[MapWalker]),
	}}
}

func (t *IDDataType) IDKey() string { return t.idKey }

// AddConverterForID adds a converter that only runs when the value's identity
// equals id at the moment the converter is reached. It shares the ordered list
// of structure converters, so a rename earlier in the same version decides
// which id converters run afterwards.
func (t *IDDataType) AddConverterForID(id string, version DataVersion, conv MapConverter) {
	key := t.idKey
	t.AddStructureConverter(version, func(data types.Map, from, to DataVersion) types.Map {
		if cur, ok := data.GetString(key); !ok || cur != id {
			return nil
		}
		return conv(data, from, to)
	})
}

// AddWalker registers a walker for values with the given identity. Lookup
// follows the same greatest-version-<=-to rule as structure walkers, per id.
func (t *IDDataType) AddWalker(version DataVersion, id string, walker MapWalker) {
	f := t.idWalkers[id]
	if f == nil {
		f = &floorMap[MapWalker]{}
		t.idWalkers[id] = f
	}
	f.add(version, walker)
}

// CopyWalkers registers, at version, the walkers that fromID has in effect at
// version under toID. Used when an id is renamed.
func (t *IDDataType) CopyWalkers(version DataVersion, fromID, toID string) {
	f := t.idWalkers[fromID]
	if f == nil {
		return
	}
	for _, w := range f.floor(version) {
		t.AddWalker(version, toID, w)
	}
}

// HasWalkers reports whether any walker was registered for id.
func (t *IDDataType) HasWalkers(id string) bool {
	return t.idWalkers[id] != nil
}
