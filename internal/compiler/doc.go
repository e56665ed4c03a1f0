// Package compiler generates the chunk catalog source from the schema
// declarations.
//
// Generation approach uses text/template + golang.org/x/tools/imports for
// readable, deterministic Go code. For every declaration it emits:
//   - the record struct with one exported field per declared field
//   - a constructor taking fields in declaration order (no validation)
//   - ChunkType, ToMap, String, WireChunk and Encode methods
//   - a dynamic constructor and a registry descriptor
//
// Field values reach the wire through the conversion rule table in
// internal/convert.
package compiler
