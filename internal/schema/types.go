package schema

//go:generate go tool stringer -type=WireShape -trimprefix=Shape -output=shape_string.go
//go:generate go tool stringer -type=Conversion -trimprefix=Conv -output=conversion_string.go
//go:generate go tool stringer -type=SourceType -trimprefix=Source -output=sourcetype_string.go

// WireShape is the structural pattern the wire codec uses for a chunk.
type WireShape int

const (
	ShapeTupleVariant            WireShape = iota + 1 // Variant(Record{fields})
	ShapeTupleVariantNamedStruct                      // Variant(OtherRecord{fields})
	ShapeInlineStruct                                 // Variant{fields}
	ShapeUnitVariant                                  // Variant
)

// IsValid reports whether s is one of the declared shapes.
func (s WireShape) IsValid() bool {
	return s >= ShapeTupleVariant && s <= ShapeUnitVariant
}

// Conversion is a per-field rule turning a declared value into a wire-ready value.
type Conversion int

const (
	ConvIdentity                       Conversion = iota // pass-through
	ConvStringToBytes                                    // text viewed as its raw bytes
	ConvListToBorrowedView                               // list borrowed without copy
	ConvParseIdentifierWithZeroDefault                   // UUID text, zero UUID on failure
	ConvWrapAsSingleArgToken                             // text bytes wrapped as a one-element list
)

// SourceType is the semantic tag of a declared field type.
type SourceType int

const (
	SourceUnknown SourceType = iota
	SourceInteger
	SourceFloat
	SourceBoolean
	SourceText
	SourceBytes
	SourceIntegerList
	SourceBoundedIntegerList
	SourceList
	SourceOptional
	SourceMap
	SourceIdentifier
)

// ChunkDeclaration describes one chunk once. Everything else is derived from it.
type ChunkDeclaration struct {
	// Name is the surface name: Go type name, runtime identifier and map "type" key.
	Name string
	// Shape selects the wire encoding strategy.
	Shape WireShape
	// Variant is the outer wire tag. Empty means Name.
	Variant string
	// Record is the inner wire record name of tuple shapes. Empty means Variant.
	Record string
	// Doc is free text; a "Category: <Name>" line assigns the category.
	Doc string
	// Fields in declaration order.
	Fields []FieldSpec
}

// VariantName returns the outer wire tag.
func (d *ChunkDeclaration) VariantName() string {
	if d.Variant != "" {
		return d.Variant
	}

	return d.Name
}

// RecordName returns the inner wire record name, or "" for shapes without one.
func (d *ChunkDeclaration) RecordName() string {
	switch d.Shape {
	case ShapeTupleVariant, ShapeTupleVariantNamedStruct:
		if d.Record != "" {
			return d.Record
		}

		return d.VariantName()
	default:
		return ""
	}
}

// Category returns the category parsed from Doc.
func (d *ChunkDeclaration) Category() string {
	return ParseCategory(d.Doc)
}

// FieldSpec describes one declared field.
type FieldSpec struct {
	// Name is the local (snake_case) name used by the map view and the stubs.
	Name string
	// Type is a Go type expression.
	Type string
	// Wire is the field name on the wire record. Empty means Name.
	Wire string
	// Conversion applied when building the wire value.
	Conversion Conversion
	// Bound marks a bounded integer list; values are clamped to Bound entries.
	Bound int
}

// WireName returns the wire field name.
func (f *FieldSpec) WireName() string {
	if f.Wire != "" {
		return f.Wire
	}

	return f.Name
}

// SourceType classifies the field's declared type.
func (f *FieldSpec) SourceType() SourceType {
	st := ClassifyString(f.Type)
	if st == SourceIntegerList && f.Bound > 0 {
		return SourceBoundedIntegerList
	}

	return st
}
