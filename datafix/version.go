package datafix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadVersion = errors.New("bad data version")

// DataVersion is a schema revision point: a game data version plus an
// optional step for changes made between two released versions.
type DataVersion struct {
	Version uint32
	Step    uint32
}

// V returns the data version v with step 0.
func V(v uint32) DataVersion {
	return DataVersion{Version: v}
}

// VS returns the data version v at the given step.
func VS(v, step uint32) DataVersion {
	return DataVersion{Version: v, Step: step}
}

// Compare orders by version, then step.
func (v DataVersion) Compare(o DataVersion) int {
	switch {
	case v.Version < o.Version:
		return -1
	case v.Version > o.Version:
		return 1
	case v.Step < o.Step:
		return -1
	case v.Step > o.Step:
		return 1
	}
	return 0
}

func (v DataVersion) Less(o DataVersion) bool {
	return v.Compare(o) < 0
}

// Within reports whether v lies in the half-open range (from, to].
func (v DataVersion) Within(from, to DataVersion) bool {
	return from.Less(v) && !to.Less(v)
}

// Encode packs the version into one orderable integer.
func (v DataVersion) Encode() uint64 {
	return uint64(v.Version)<<32 | uint64(v.Step)
}

// DecodeVersion reverses Encode.
func DecodeVersion(e uint64) DataVersion {
	return DataVersion{Version: uint32(e >> 32), Step: uint32(e)}
}

func (v DataVersion) String() string {
	if v.Step == 0 {
		return strconv.FormatUint(uint64(v.Version), 10)
	}
	return fmt.Sprintf("%d.%d", v.Version, v.Step)
}

// ParseVersion reads the String form, "1451" or "1451.3".
func ParseVersion(s string) (DataVersion, error) {
	major, step, hasStep := strings.Cut(s, ".")
	v, err := strconv.ParseUint(major, 10, 32)
	if err != nil {
		return DataVersion{}, fmt.Errorf("ParseVersion: %w: %q", ErrBadVersion, s)
	}
	d := DataVersion{Version: uint32(v)}
	if hasStep {
		st, err := strconv.ParseUint(step, 10, 32)
		if err != nil {
			return DataVersion{}, fmt.Errorf("ParseVersion: %w: %q", ErrBadVersion, s)
		}
		d.Step = uint32(st)
	}
	return d, nil
}

// UnmarshalText lets versions be read from config files.
func (v *DataVersion) UnmarshalText(b []byte) error {
	d, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = d
	return nil
}

func (v DataVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
