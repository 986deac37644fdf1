// Package model holds the go-mc tagged structs used to peek at chunk data
// without decoding the whole tree.
package model

// ChunkHeader is the part of a chunk needed to plan a migration. Chunks
// before 2842 keep their position under Level.
type ChunkHeader struct {
	DataVersion int32       `nbt:"DataVersion" json:"DataVersion"`
	XPos        int32       `nbt:"xPos" json:"xPos"`
	ZPos        int32       `nbt:"zPos" json:"zPos"`
	Status      string      `nbt:"Status" json:"Status,omitempty"`
	Level       LevelHeader `nbt:"Level" json:"Level,omitempty"`
}

type LevelHeader struct {
	XPos   int32  `nbt:"xPos" json:"xPos"`
	ZPos   int32  `nbt:"zPos" json:"zPos"`
	Status string `nbt:"Status" json:"Status,omitempty"`
}

// Pos returns the chunk position from whichever layout the chunk uses.
func (h ChunkHeader) Pos() (x, z int32) {
	if h.XPos != 0 || h.ZPos != 0 {
		return h.XPos, h.ZPos
	}
	return h.Level.XPos, h.Level.ZPos
}

func (h ChunkHeader) ChunkStatus() string {
	if h.Status != "" {
		return h.Status
	}
	return h.Level.Status
}
