// Package convert is the field conversion engine.
//
// It has three parts:
//   - runtime helpers called by the generated chunk code (StringBytes, Borrow,
//     Identifier, SingleArgToken, Bounded); none of them fail;
//   - a rule table mapping (source type, conversion) pairs to Go expression
//     templates producing wire values, used by the compiler;
//   - coercion helpers for values arriving from a dynamic host (Int32, Text,
//     ...), built on spf13/cast.
package convert
