// Package uuidconv rewrites the old UUID encodings (two long halves, an
// M/L compound or a string) into the four int array form.
package uuidconv

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/xmdhs/datafixer/types"
)

// FromLongs splits the halves into four ints, most significant first. Two
// zero halves are the "no UUID" marker and give false.
func FromLongs(most, least int64) ([]int32, bool) {
	if most == 0 && least == 0 {
		return nil, false
	}
	return []int32{int32(most >> 32), int32(most), int32(least >> 32), int32(least)}, true
}

// FromString parses the textual form. Unparsable text gives false.
func FromString(s string) ([]int32, bool) {
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, false
	}
	out := make([]int32, 4)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(u[i*4:]))
	}
	return out, true
}

// ToString formats the int array form, the inverse of FromString.
func ToString(v []int32) (string, bool) {
	if len(v) != 4 {
		return "", false
	}
	var u uuid.UUID
	for i, n := range v {
		binary.BigEndian.PutUint32(u[i*4:], uint32(n))
	}
	return u.String(), true
}

// ReplaceLeastMost moves prefix+"Most" and prefix+"Least" to newKey. The old
// keys are removed even when nothing is written.
func ReplaceLeastMost(data types.Map, prefix, newKey string) bool {
	most, okM := data.GetLong(prefix + "Most")
	least, okL := data.GetLong(prefix + "Least")
	if !okM && !okL {
		return false
	}
	data.Remove(prefix + "Most")
	data.Remove(prefix + "Least")
	v, ok := FromLongs(most, least)
	if ok {
		data.SetIntArray(newKey, v)
	}
	return ok
}

// ReplaceML moves a {M: long, L: long} compound at oldKey to newKey.
func ReplaceML(data types.Map, oldKey, newKey string) bool {
	m, ok := data.GetMap(oldKey)
	if !ok {
		return false
	}
	data.Remove(oldKey)
	most, _ := m.GetLong("M")
	least, _ := m.GetLong("L")
	v, ok := FromLongs(most, least)
	if ok {
		data.SetIntArray(newKey, v)
	}
	return ok
}

// ReplaceString moves a textual UUID at oldKey to newKey.
func ReplaceString(data types.Map, oldKey, newKey string) bool {
	s, ok := data.GetString(oldKey)
	if !ok {
		return false
	}
	data.Remove(oldKey)
	v, ok := FromString(s)
	if ok {
		data.SetIntArray(newKey, v)
	}
	return ok
}
