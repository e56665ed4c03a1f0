package wire

import (
	"fmt"

	"github.com/google/uuid"
)

// Shape is the structural form of a chunk tree.
type Shape int

const (
	// ShapeTuple wraps the fields in an inner record.
	ShapeTuple Shape = iota + 1
	// ShapeInline keeps the fields directly on the variant.
	ShapeInline
	// ShapeUnit carries no fields.
	ShapeUnit
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeTuple:
		return "tuple"
	case ShapeInline:
		return "inline"
	case ShapeUnit:
		return "unit"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Kind tags the payload held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindBytes
	KindUUID
	KindInts
	KindBytesList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBytes:
		return "bytes"
	case KindUUID:
		return "uuid"
	case KindInts:
		return "ints"
	case KindBytesList:
		return "bytes-list"
	default:
		return "invalid"
	}
}

// Value is one wire-ready field value.
type Value struct {
	kind  Kind
	i     int32
	b     []byte
	u     uuid.UUID
	ints  []int32
	lists [][]byte
}

// Int wraps a 32-bit integer.
func Int(v int32) Value { return Value{kind: KindInt, i: v} }

// Bytes wraps a byte sequence. The slice may be borrowed.
func Bytes(b []byte) Value { return Value{kind: KindBytes, b: b} }

// UUID wraps a 16-byte identifier.
func UUID(u uuid.UUID) Value { return Value{kind: KindUUID, u: u} }

// Ints wraps a list of 32-bit integers.
func Ints(v []int32) Value { return Value{kind: KindInts, ints: v} }

// BytesList wraps a list of byte sequences.
func BytesList(v [][]byte) Value { return Value{kind: KindBytesList, lists: v} }

// Kind returns the payload kind.
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the integer payload.
func (v Value) AsInt() int32 { return v.i }

// AsBytes returns the byte payload.
func (v Value) AsBytes() []byte { return v.b }

// AsUUID returns the identifier payload.
func (v Value) AsUUID() uuid.UUID { return v.u }

// AsInts returns the integer list payload.
func (v Value) AsInts() []int32 { return v.ints }

// AsBytesList returns the byte-sequence list payload.
func (v Value) AsBytesList() [][]byte { return v.lists }

// Field is a named value inside a chunk tree.
type Field struct {
	Name  string
	Value Value
}

// Chunk is the value tree handed to the codec.
type Chunk struct {
	// Variant is the outer tag.
	Variant string
	// Record is the inner record name; empty unless Shape is ShapeTuple.
	Record string
	Shape  Shape
	Fields []Field
}

// Field returns the value of the named field.
func (c *Chunk) Field(name string) (Value, bool) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return c.Fields[i].Value, true
		}
	}

	return Value{}, false
}
