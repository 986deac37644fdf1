package chunk

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/xmdhs/datafixer/types"
)

// Digest hashes a tree independently of map iteration order. Two trees with
// the same keys, kinds and values hash alike.
func Digest(m types.Map) uint64 {
	d := xxhash.New()
	digestValue(d, m)
	return d.Sum64()
}

func digestValue(d *xxhash.Digest, v any) {
	var buf [8]byte
	switch n := v.(type) {
	case types.Map:
		d.WriteString("{")
		for _, k := range n.Keys() {
			d.WriteString(k)
			d.WriteString(":")
			e, _ := n.Get(k)
			digestValue(d, e)
		}
		d.WriteString("}")
	case types.List:
		d.WriteString("[")
		for i := 0; i < n.Size(); i++ {
			digestValue(d, n.Get(i))
		}
		d.WriteString("]")
	case string:
		d.WriteString("s")
		binary.BigEndian.PutUint64(buf[:], uint64(len(n)))
		d.Write(buf[:])
		d.WriteString(n)
	case float32:
		d.WriteString("f")
		binary.BigEndian.PutUint32(buf[:4], math.Float32bits(n))
		d.Write(buf[:4])
	case float64:
		d.WriteString("d")
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(n))
		d.Write(buf[:])
	default:
		fmt.Fprintf(d, "%T%v;", v, v)
	}
}
