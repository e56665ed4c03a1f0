// Package schema holds the single declaration every chunk artifact is derived from.
//
// A ChunkDeclaration names a chunk, picks one of four wire shapes and lists its
// fields in declaration order. The same Go source is consumed twice:
//
//   - executed: the compiler ranges over Declarations and renders package chunks
//   - parsed: the reflector reads declarations.go as text to build the stub document
//
// The two passes never depend on each other's output.
//
// # Wire shapes
//
//   - TupleVariant: fields fill a record named after the variant tag
//   - TupleVariantNamedStruct: same, but the inner record has its own name
//   - InlineStruct: fields are written directly as the variant's inline fields
//   - UnitVariant: no fields at all
//
// # Field types
//
// FieldSpec.Type is a Go type expression ("int32", "string", "[]byte", "[]int32",
// "*int32", "map[string]string", "uuid.UUID"). Classify maps an expression to the
// SourceType tag that drives conversions and stub typing.
package schema
