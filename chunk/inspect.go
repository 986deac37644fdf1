package chunk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stretchr/objx"

	"github.com/xmdhs/datafixer/model"
)

var ErrChunkNotFound = errors.New("chunk not found")

// Inspection is the result of reading paths from one chunk. X and Z are
// relative to the region, ChunkX and ChunkZ are world chunk coordinates.
type Inspection struct {
	X      int               `json:"x"`
	Z      int               `json:"z"`
	ChunkX int32             `json:"chunk_x"`
	ChunkZ int32             `json:"chunk_z"`
	Status string            `json:"status,omitempty"`
	Header model.ChunkHeader `json:"header"`
	Values map[string]any    `json:"values"`
}

// Inspect reads the dotted paths ("Level.Entities[0].id") of every chunk in
// the region file at path. Missing paths are left out of Values.
func Inspect(path string, paths ...string) ([]Inspection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}
	defer f.Close()

	headers, err := ReadRegion[model.ChunkHeader](f)
	if err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}
	trees, err := ReadRegion[map[string]any](f)
	if err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}

	out := make([]Inspection, 0, len(trees))
	for i, tr := range trees {
		m := objx.New(tr.Data)
		h := headers[i].Data
		in := Inspection{X: tr.X, Z: tr.Z, Status: h.ChunkStatus(), Header: h, Values: map[string]any{}}
		in.ChunkX, in.ChunkZ = h.Pos()
		for _, p := range paths {
			if v := m.Get(p); !v.IsNil() {
				in.Values[p] = v.Data()
			}
		}
		out = append(out, in)
	}
	return out, nil
}

// InspectBlock reads paths from the chunk holding block column x, z in the
// region folder dir.
func InspectBlock(dir string, x, z int, paths ...string) (Inspection, error) {
	l, err := Inspect(filepath.Join(dir, BlockPos2Mca(x, z)), paths...)
	if err != nil {
		return Inspection{}, fmt.Errorf("InspectBlock: %w", err)
	}
	cx, cz := (x>>4)&31, (z>>4)&31
	for _, in := range l {
		if in.X == cx && in.Z == cz {
			return in, nil
		}
	}
	return Inspection{}, fmt.Errorf("InspectBlock: %w: block %d %d", ErrChunkNotFound, x, z)
}
