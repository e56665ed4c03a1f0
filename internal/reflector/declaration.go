package reflector

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"teehistorian-gen/internal/schema"
)

const (
	declarationType = "ChunkDeclaration"
	fieldSpecType   = "FieldSpec"
)

// isNamedType matches name and pkg.name.
func isNamedType(expr ast.Expr, name string) bool {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name == name
	case *ast.SelectorExpr:
		return t.Sel.Name == name
	case *ast.StarExpr:
		return isNamedType(t.X, name)
	}

	return false
}

// isDeclarationList matches []ChunkDeclaration and [N]ChunkDeclaration.
func isDeclarationList(expr ast.Expr) bool {
	arr, ok := expr.(*ast.ArrayType)

	return ok && isNamedType(arr.Elt, declarationType)
}

func (r *Reflector) declarationRecords(file *ast.File) []*Record {
	var res []*Record

	ast.Inspect(file, func(n ast.Node) bool {
		lit, ok := n.(*ast.CompositeLit)
		if !ok {
			return true
		}

		switch {
		case isNamedType(lit.Type, declarationType):
			res = r.appendDeclaration(res, lit)
		case isDeclarationList(lit.Type):
			// Typed elements are visited on their own.
			for _, elt := range lit.Elts {
				if e, ok := elt.(*ast.CompositeLit); ok && e.Type == nil {
					res = r.appendDeclaration(res, e)
				}
			}
		}

		return true
	})

	return res
}

func (r *Reflector) appendDeclaration(res []*Record, lit *ast.CompositeLit) []*Record {
	rec, err := r.readDeclaration(lit)
	if err != nil {
		r.skip(err)

		return res
	}

	return append(res, rec)
}

func (r *Reflector) readDeclaration(lit *ast.CompositeLit) (*Record, *DeclarationError) {
	pos := r.position(lit.Pos())

	keys, err := keyedElements(lit)
	if err != nil {
		return nil, &DeclarationError{Position: pos, Reason: err.Error()}
	}

	nameExpr, ok := keys["Name"]
	if !ok {
		return nil, &DeclarationError{Position: pos, Reason: "missing Name"}
	}

	name, ok := stringValue(nameExpr)
	if !ok {
		return nil, &DeclarationError{Position: pos, Reason: "Name is not a string constant"}
	}

	fail := func(format string, args ...any) *DeclarationError {
		return &DeclarationError{Position: pos, Name: name, Reason: fmt.Sprintf(format, args...)}
	}

	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return nil, fail("Name is not an exported identifier")
	}

	rec := &Record{
		Name:     name,
		Origin:   OriginDeclaration,
		Position: pos,
	}

	if e, ok := keys["Doc"]; ok {
		doc, ok := stringValue(e)
		if !ok {
			return nil, fail("Doc is not a string constant")
		}

		rec.Doc = doc
	}

	rec.Category = schema.ParseCategory(rec.Doc)

	if e, ok := keys["Fields"]; ok {
		fields, err := readFields(e)
		if err != nil {
			return nil, fail("%v", err)
		}

		rec.Fields = fields
	}

	return rec, nil
}

func readFields(expr ast.Expr) ([]Field, error) {
	if id, ok := expr.(*ast.Ident); ok && id.Name == "nil" {
		return nil, nil
	}

	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		return nil, errors.New("fields value is not a literal")
	}

	res := make([]Field, 0, len(lit.Elts))

	for i, elt := range lit.Elts {
		fl, ok := elt.(*ast.CompositeLit)
		if !ok || (fl.Type != nil && !isNamedType(fl.Type, fieldSpecType)) {
			return nil, fmt.Errorf("field %d is not a FieldSpec literal", i)
		}

		keys, err := keyedElements(fl)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}

		name, ok := stringValue(keys["Name"])
		if !ok || name == "" {
			return nil, fmt.Errorf("field %d has no constant Name", i)
		}

		typ, ok := stringValue(keys["Type"])
		if !ok || typ == "" {
			return nil, fmt.Errorf("field %q has no constant Type", name)
		}

		res = append(res, Field{Name: name, Type: typ})
	}

	return res, nil
}

// keyedElements indexes the elements of a keyed composite literal.
func keyedElements(lit *ast.CompositeLit) (map[string]ast.Expr, error) {
	res := make(map[string]ast.Expr, len(lit.Elts))

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return nil, errors.New("positional elements are not supported")
		}

		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("unexpected key %T", kv.Key)
		}

		res[key.Name] = kv.Value
	}

	return res, nil
}

// stringValue evaluates a string literal or a concatenation of string
// literals.
func stringValue(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.STRING {
			return "", false
		}

		s, err := strconv.Unquote(e.Value)
		if err != nil {
			return "", false
		}

		return s, true
	case *ast.ParenExpr:
		return stringValue(e.X)
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			return "", false
		}

		x, ok := stringValue(e.X)
		if !ok {
			return "", false
		}

		y, ok := stringValue(e.Y)
		if !ok {
			return "", false
		}

		return x + y, true
	}

	return "", false
}
