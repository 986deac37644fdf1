package datafix

import "fmt"

var _ ValueType = (*ValueDataType)(nil)

// ValueDataType is the converter chain of a scalar data type, such as item,
// block or entity names and biome ids.
type ValueDataType struct {
	name       string
	converters []versioned[ValueConverter]
}

func NewValueDataType(name string) *ValueDataType {
	return &ValueDataType{name: name}
}

func (t *ValueDataType) Name() string { return t.name }

// AddConverter appends a converter. The same ordering contract as
// MapDataType.AddStructureConverter applies.
func (t *ValueDataType) AddConverter(version DataVersion, conv ValueConverter) {
	if n := len(t.converters); debugChecks && n > 0 && version.Less(t.converters[n-1].version) {
		panic(fmt.Sprintf("datafix: %s: converter for %s added after %s", t.name, version, t.converters[n-1].version))
	}
	t.converters = append(t.converters, versioned[ValueConverter]{version: version, fn: conv})
}

func (t *ValueDataType) Counts() (converters, walkers int) {
	return len(t.converters), 0
}

func (t *ValueDataType) ConvertAny(data any, from, to DataVersion) any {
	return t.Convert(data, from, to)
}

// Convert runs every converter with a version in (from, to] and returns the
// resulting value.
func (t *ValueDataType) Convert(data any, from, to DataVersion) any {
	for _, c := range t.converters {
		if !from.Less(c.version) {
			continue
		}
		if to.Less(c.version) {
			break
		}
		if r := c.fn(data, from, to); r != nil {
			data = r
		}
	}
	return data
}
