// Package chunks is the teehistorian chunk catalog.
//
// Every chunk record is generated from the declarations in
// internal/schema; the auxiliary records Unknown, CustomChunk and Generic
// are written by hand. Each record offers the same surface: a constructor
// taking fields in declaration order, ChunkType, an ordered map view,
// a textual representation and an encoder producing teehistorian bytes.
//
// The runtime registry (Names, Lookup, New) lets a dynamic host build any
// record by surface name, and Writer assembles records into a complete
// teehistorian stream.
package chunks

//go:generate go run ../cmd/chunkgen --config ../chunkgen.toml generate
