package chunks

import "teehistorian-gen/wire"

// Chunk is implemented by every record in the catalog.
type Chunk interface {
	// ChunkType returns the surface name.
	ChunkType() string
	// ToMap returns the ordered map view: "type" first, then the fields in
	// declaration order.
	ToMap() *Map
	// String returns the textual representation Name(field=value, ...).
	String() string
	// WireChunk returns the value tree handed to the codec. It may borrow
	// memory from the record.
	WireChunk() wire.Chunk
	// Encode returns the teehistorian encoding of the record.
	Encode() ([]byte, error)
}

func encode(c Chunk) ([]byte, error) {
	return appendChunk(nil, c)
}

func appendChunk(dst []byte, c Chunk) ([]byte, error) {
	res, err := wire.AppendChunk(dst, c.WireChunk())
	if err != nil {
		return dst, &EncodeError{Chunk: c.ChunkType(), Err: err}
	}

	return res, nil
}
