// Package reflector reads chunk declarations from Go source without running
// it.
//
// Two forms are recognized:
//   - schema.ChunkDeclaration composite literals, including the elided
//     element literals of a []ChunkDeclaration;
//   - struct types marked with a //chunk:record directive, whose exported
//     fields carry a chunk:"name" tag.
//
// Files marked as generated are never read. Declarations that cannot be
// reconstructed are reported as warnings and skipped.
package reflector
