package schema

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
)

// ParseType parses a Go type expression such as "[]int32" or "*uuid.UUID".
func ParseType(expr string) (ast.Expr, error) {
	e, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid type expression %q: %w", expr, err)
	}

	return e, nil
}

// TypeString renders a type expression back to source form.
func TypeString(expr ast.Expr) string {
	return types.ExprString(expr)
}

// ClassifyString classifies a textual type expression. Unparsable input is
// SourceUnknown.
func ClassifyString(expr string) SourceType {
	e, err := ParseType(expr)
	if err != nil {
		return SourceUnknown
	}

	return Classify(e)
}

// Classify maps a type expression to its SourceType tag.
func Classify(expr ast.Expr) SourceType {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return Classify(e.X)
	case *ast.Ident:
		return classifyIdent(e.Name)
	case *ast.SelectorExpr:
		if isIdentifierSelector(e) {
			return SourceIdentifier
		}

		return SourceUnknown
	case *ast.StarExpr:
		return SourceOptional
	case *ast.MapType:
		return SourceMap
	case *ast.ArrayType:
		switch Classify(e.Elt) {
		case SourceInteger:
			if isByteIdent(e.Elt) {
				return SourceBytes
			}

			return SourceIntegerList
		default:
			return SourceList
		}
	default:
		return SourceUnknown
	}
}

// OptionalElem returns the pointee of an optional type expression, or nil.
func OptionalElem(expr ast.Expr) ast.Expr {
	for {
		p, ok := expr.(*ast.ParenExpr)
		if !ok {
			break
		}

		expr = p.X
	}

	if s, ok := expr.(*ast.StarExpr); ok {
		return s.X
	}

	return nil
}

func classifyIdent(name string) SourceType {
	switch name {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"byte", "rune":
		return SourceInteger
	case "float32", "float64":
		return SourceFloat
	case "bool":
		return SourceBoolean
	case "string":
		return SourceText
	default:
		return SourceUnknown
	}
}

func isByteIdent(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && (id.Name == "byte" || id.Name == "uint8")
}

// isIdentifierSelector matches uuid.UUID.
func isIdentifierSelector(sel *ast.SelectorExpr) bool {
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "uuid" && sel.Sel.Name == "UUID"
}
