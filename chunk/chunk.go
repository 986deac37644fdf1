// Package chunk reads and migrates the chunks stored in Anvil region files.
package chunk

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/Tnze/go-mc/nbt"
	"github.com/Tnze/go-mc/save/region"
)

// Compression schemes of a region sector.
const (
	CompressionGzip = 1
	CompressionZlib = 2
	CompressionNone = 3
)

var (
	ErrInvalidChunk       = errors.New("invalid chunk")
	ErrUnKnownCompression = errors.New("unknown compression")
)

// Sector is one chunk of a region file, x and z relative to the region.
type Sector[K any] struct {
	X    int `json:"x"`
	Z    int `json:"z"`
	Data K   `json:"data"`
}

// ReadRegion decodes every present chunk of the region in f into K using
// go-mc struct tags.
func ReadRegion[K any](f io.ReadWriteSeeker) ([]Sector[K], error) {
	rg, err := region.Load(f)
	if err != nil {
		return nil, fmt.Errorf("ReadRegion: %w", err)
	}
	cl := make([]Sector[K], 0)
	err = eachSector(rg, func(x, z int, b []byte) error {
		var v K
		if err := nbt.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("chunk %d %d: %w", x, z, err)
		}
		cl = append(cl, Sector[K]{X: x, Z: z, Data: v})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadRegion: %w", err)
	}
	return cl, nil
}

// eachSector calls fn with the decompressed bytes of every present chunk.
func eachSector(rg *region.Region, fn func(x, z int, b []byte) error) error {
	for x := 0; x < 32; x++ {
		for z := 0; z < 32; z++ {
			if !rg.ExistSector(x, z) {
				continue
			}
			b, err := rg.ReadSector(x, z)
			if err != nil {
				return fmt.Errorf("eachSector: %w", err)
			}
			b, err = mcDecompress(b)
			if err != nil {
				return fmt.Errorf("eachSector: chunk %d %d: %w", x, z, err)
			}
			if err := fn(x, z, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// BlockPos2Mca names the region file holding block column x, z.
func BlockPos2Mca(x, z int) string {
	x = int(math.Floor(float64(x) / 512.0))
	z = int(math.Floor(float64(z) / 512.0))
	return fmt.Sprintf("r.%v.%v.mca", x, z)
}

func mcDecompress(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("mcDecompress: %w", ErrInvalidChunk)
	}
	var r io.Reader = bytes.NewReader(data[1:])
	var err error
	switch data[0] {
	default:
		err = fmt.Errorf("compression %d: %w", data[0], ErrUnKnownCompression)
	case CompressionGzip:
		r, err = gzip.NewReader(r)
	case CompressionZlib:
		r, err = zlib.NewReader(r)
	case CompressionNone:
	}
	if err != nil {
		return nil, fmt.Errorf("mcDecompress: %w", err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mcDecompress: %w", err)
	}
	return b, nil
}

// mcCompress writes data back as a zlib sector, the scheme the game uses.
func mcCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(CompressionZlib)
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("mcCompress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("mcCompress: %w", err)
	}
	return buf.Bytes(), nil
}
