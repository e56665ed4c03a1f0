// Package wire encodes chunk value trees into the teehistorian binary format.
//
// A Chunk is a tagged tree: an outer variant tag, an optional inner record
// name, and named field values. The codec looks up the layout registered for
// the variant, checks the tree against it and appends the encoded bytes.
// Core chunks use negative tags; everything else is an extension chunk
// (tag -11) carrying a UUIDv3 derived from the extension name.
//
// Integers use the teeworlds variable-length packing, strings are
// NUL-terminated. Byte slices in a value tree are only read during the
// encode call and never retained.
package wire
