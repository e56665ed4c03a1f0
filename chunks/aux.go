package chunks

import (
	"encoding/hex"
	"fmt"
	"strings"

	"teehistorian-gen/internal/convert"
	"teehistorian-gen/wire"
)

// GenericClientID is the recipient written for Generic records, which
// borrow the NetMessage layout.
const GenericClientID int32 = -1

const previewBytes = 32

// Unknown is an extension record whose identifier has no registered layout.
// The identifier text is parsed when encoding; unparsable text encodes as
// the zero UUID.
//
//chunk:record
type Unknown struct {
	UUID string `chunk:"uuid"`
	Data []byte `chunk:"data"`
}

// NewUnknown builds an Unknown record.
func NewUnknown(uuid string, data []byte) *Unknown {
	return &Unknown{UUID: uuid, Data: data}
}

func (c *Unknown) ChunkType() string { return "Unknown" }

func (c *Unknown) ToMap() *Map {
	m := NewMap(3)
	m.Set("type", c.ChunkType())
	m.Set("uuid", c.UUID)
	m.Set("data", c.Data)

	return m
}

func (c *Unknown) String() string {
	return fmt.Sprintf("Unknown(uuid=%q, data=%v)", c.UUID, c.Data)
}

func (c *Unknown) WireChunk() wire.Chunk {
	return unknownWireChunk(c.UUID, c.Data)
}

func (c *Unknown) Encode() ([]byte, error) { return encode(c) }

// DataPreview renders the first 32 payload bytes as hex.
func (c *Unknown) DataPreview() string { return dataPreview(c.Data) }

// CustomChunk is an extension record claimed by an externally registered
// handler. It encodes exactly like Unknown; HandlerName lives only in the
// object and map views because it cannot be recovered from the wire.
//
//chunk:record
type CustomChunk struct {
	UUID        string `chunk:"uuid"`
	Data        []byte `chunk:"data"`
	HandlerName string `chunk:"handler_name"`
}

// NewCustomChunk builds a CustomChunk record.
func NewCustomChunk(uuid string, data []byte, handlerName string) *CustomChunk {
	return &CustomChunk{UUID: uuid, Data: data, HandlerName: handlerName}
}

func (c *CustomChunk) ChunkType() string { return "CustomChunk" }

func (c *CustomChunk) ToMap() *Map {
	m := NewMap(4)
	m.Set("type", c.ChunkType())
	m.Set("uuid", c.UUID)
	m.Set("data", c.Data)
	m.Set("handler_name", c.HandlerName)

	return m
}

func (c *CustomChunk) String() string {
	return fmt.Sprintf("CustomChunk(uuid=%q, data=%v, handler_name=%q)", c.UUID, c.Data, c.HandlerName)
}

func (c *CustomChunk) WireChunk() wire.Chunk {
	return unknownWireChunk(c.UUID, c.Data)
}

func (c *CustomChunk) Encode() ([]byte, error) { return encode(c) }

// DataPreview renders the first 32 payload bytes as hex.
func (c *CustomChunk) DataPreview() string { return dataPreview(c.Data) }

// Generic is a free-form record. It has no layout of its own and is written
// as a NetMessage addressed to GenericClientID.
//
//chunk:record
type Generic struct {
	Data string `chunk:"data"`
}

// NewGeneric builds a Generic record.
func NewGeneric(data string) *Generic {
	return &Generic{Data: data}
}

func (c *Generic) ChunkType() string { return "Generic" }

func (c *Generic) ToMap() *Map {
	m := NewMap(2)
	m.Set("type", c.ChunkType())
	m.Set("data", c.Data)

	return m
}

func (c *Generic) String() string {
	return fmt.Sprintf("Generic(data=%q)", c.Data)
}

func (c *Generic) WireChunk() wire.Chunk {
	return wire.Chunk{
		Variant: "NetMessage",
		Record:  "NetMessage",
		Shape:   wire.ShapeTuple,
		Fields: []wire.Field{
			{Name: "cid", Value: wire.Int(GenericClientID)},
			{Name: "msg", Value: wire.Bytes(convert.StringBytes(c.Data))},
		},
	}
}

func (c *Generic) Encode() ([]byte, error) { return encode(c) }

func unknownWireChunk(id string, data []byte) wire.Chunk {
	return wire.Chunk{
		Variant: "UnknownEx",
		Record:  "UnknownEx",
		Shape:   wire.ShapeTuple,
		Fields: []wire.Field{
			{Name: "uuid", Value: wire.UUID(convert.Identifier(id))},
			{Name: "data", Value: wire.Bytes(convert.Borrow(data))},
		},
	}
}

func dataPreview(data []byte) string {
	n := min(len(data), previewBytes)

	parts := make([]string, n)
	for i := range n {
		parts[i] = hex.EncodeToString(data[i : i+1])
	}

	if len(data) > previewBytes {
		return fmt.Sprintf("%s... (%d bytes total)", strings.Join(parts, " "), len(data))
	}

	return fmt.Sprintf("%s (%d bytes)", strings.Join(parts, " "), len(data))
}

func newUnknownFromValues(values []any) (Chunk, error) {
	id, err := convert.Text(values[0])
	if err != nil {
		return nil, argError("Unknown", "uuid", err)
	}

	data, err := convert.Bytes(values[1])
	if err != nil {
		return nil, argError("Unknown", "data", err)
	}

	return NewUnknown(id, data), nil
}

func newCustomChunkFromValues(values []any) (Chunk, error) {
	id, err := convert.Text(values[0])
	if err != nil {
		return nil, argError("CustomChunk", "uuid", err)
	}

	data, err := convert.Bytes(values[1])
	if err != nil {
		return nil, argError("CustomChunk", "data", err)
	}

	handlerName, err := convert.Text(values[2])
	if err != nil {
		return nil, argError("CustomChunk", "handler_name", err)
	}

	return NewCustomChunk(id, data, handlerName), nil
}

func newGenericFromValues(values []any) (Chunk, error) {
	data, err := convert.Text(values[0])
	if err != nil {
		return nil, argError("Generic", "data", err)
	}

	return NewGeneric(data), nil
}

var auxiliary = []Descriptor{
	descriptor("Unknown", "Other", newUnknownFromValues, "uuid", "data"),
	descriptor("CustomChunk", "Other", newCustomChunkFromValues, "uuid", "data", "handler_name"),
	descriptor("Generic", "Other", newGenericFromValues, "data"),
}
