package board

import (
	"encoding/binary"
	"errors"
)

// GobEncode implements gob.GobEncoder, serializing Size, Wrap and the
// packed occupancy words directly rather than relying on gob's
// reflection-based struct encoder, which would silently drop the
// unexported data field. Used by internal/aggregate's wire codec to
// carry solutions across the rank boundary (spec.md §5/§9's "message
// passing collaborator").
func (b Board) GobEncode() ([]byte, error) {
	buf := make([]byte, 5+8*len(b.data))
	binary.BigEndian.PutUint32(buf[0:4], uint32(b.Size))
	if b.Wrap {
		buf[4] = 1
	}
	for i, w := range b.data {
		binary.BigEndian.PutUint64(buf[5+i*8:5+i*8+8], w)
	}
	return buf, nil
}

// GobDecode implements gob.GobDecoder, the inverse of GobEncode.
func (b *Board) GobDecode(data []byte) error {
	if len(data) < 5 {
		return errors.New("board: short gob payload")
	}
	b.Size = int(binary.BigEndian.Uint32(data[0:4]))
	b.Wrap = data[4] != 0
	rest := data[5:]
	if len(rest)%8 != 0 {
		return errors.New("board: malformed word payload")
	}
	b.data = make([]uint64, len(rest)/8)
	for i := range b.data {
		b.data[i] = binary.BigEndian.Uint64(rest[i*8 : i*8+8])
	}
	return nil
}
