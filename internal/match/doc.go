// Package match provides identifier normalization, Go name derivation and
// Levenshtein-ranked name suggestions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - GoName: converts a snake_case field name to an exported Go name
//   - Distance, Similarity: rune-wise Levenshtein edit distance
//   - Suggest: ranks known names against an unknown one
package match
