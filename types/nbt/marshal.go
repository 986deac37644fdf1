package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	gonbt "github.com/Tnze/go-mc/nbt"

	"github.com/xmdhs/datafixer/types"
)

var _ gonbt.Marshaler = (*List)(nil)

// TagType makes go-mc write the list as a list tag whatever its element
// kind. Handed over as a plain slice, int, long and byte lists would be
// written as array tags.
func (l *List) TagType() byte { return gonbt.TagList }

// MarshalNBT writes the list payload: element tag, length and elements.
func (l *List) MarshalNBT(w io.Writer) error {
	if err := writeByte(w, tagOf(l.typ)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, int32(len(l.elems))); err != nil {
		return err
	}
	for _, v := range l.elems {
		if err := writePayload(w, v); err != nil {
			return err
		}
	}
	return nil
}

// encodable returns c as a map go-mc can marshal, lists left as *List.
func (c *Compound) encodable() map[string]any {
	m := make(map[string]any, len(c.m))
	for k, v := range c.m {
		if n, ok := v.(*Compound); ok {
			m[k] = n.encodable()
			continue
		}
		m[k] = v
	}
	return m
}

func tagOf(t types.ObjectType) byte {
	switch t {
	case types.ObjectTypeByte:
		return gonbt.TagByte
	case types.ObjectTypeShort:
		return gonbt.TagShort
	case types.ObjectTypeInt:
		return gonbt.TagInt
	case types.ObjectTypeLong:
		return gonbt.TagLong
	case types.ObjectTypeFloat:
		return gonbt.TagFloat
	case types.ObjectTypeDouble:
		return gonbt.TagDouble
	case types.ObjectTypeString:
		return gonbt.TagString
	case types.ObjectTypeByteArray:
		return gonbt.TagByteArray
	case types.ObjectTypeIntArray:
		return gonbt.TagIntArray
	case types.ObjectTypeLongArray:
		return gonbt.TagLongArray
	case types.ObjectTypeList:
		return gonbt.TagList
	case types.ObjectTypeMap:
		return gonbt.TagCompound
	}
	return gonbt.TagEnd
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("writeString: string of %d bytes too long", len(s))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func writePayload(w io.Writer, v any) error {
	switch n := v.(type) {
	case int8, int16, int32, int64, float32, float64:
		return binary.Write(w, binary.BigEndian, n)
	case string:
		return writeString(w, n)
	case []byte:
		if err := binary.Write(w, binary.BigEndian, int32(len(n))); err != nil {
			return err
		}
		_, err := w.Write(n)
		return err
	case []int32:
		if err := binary.Write(w, binary.BigEndian, int32(len(n))); err != nil {
			return err
		}
		return binary.Write(w, binary.BigEndian, n)
	case []int64:
		if err := binary.Write(w, binary.BigEndian, int32(len(n))); err != nil {
			return err
		}
		return binary.Write(w, binary.BigEndian, n)
	case *List:
		return n.MarshalNBT(w)
	case *Compound:
		for _, k := range n.Keys() {
			e := n.m[k]
			if err := writeByte(w, tagOf(typeOf(e))); err != nil {
				return err
			}
			if err := writeString(w, k); err != nil {
				return err
			}
			if err := writePayload(w, e); err != nil {
				return err
			}
		}
		return writeByte(w, gonbt.TagEnd)
	}
	return fmt.Errorf("%w: %T", ErrUnsupported, v)
}
