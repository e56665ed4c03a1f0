package reflector

import (
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"teehistorian-gen/internal/schema"
)

const (
	recordDirective = "//chunk:record"
	fieldTag        = "chunk"
)

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == recordDirective {
			return true
		}
	}

	return false
}

func (r *Reflector) structRecords(file *ast.File) []*Record {
	var res []*Record

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && !gen.Lparen.IsValid() {
				doc = gen.Doc
			}

			if !hasDirective(doc) {
				continue
			}

			rec, err := r.readStruct(ts, doc)
			if err != nil {
				r.skip(err)

				continue
			}

			res = append(res, rec)
		}
	}

	return res
}

func (r *Reflector) readStruct(ts *ast.TypeSpec, doc *ast.CommentGroup) (*Record, *DeclarationError) {
	pos := r.position(ts.Pos())
	name := ts.Name.Name

	fail := func(reason string) *DeclarationError {
		return &DeclarationError{Position: pos, Name: name, Reason: reason}
	}

	if !token.IsExported(name) {
		return nil, fail("record type is not exported")
	}

	if ts.TypeParams != nil {
		return nil, fail("record type is generic")
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, fail("record type is not a struct")
	}

	// Text drops directive lines.
	text := strings.TrimSpace(doc.Text())

	rec := &Record{
		Name:     name,
		Doc:      text,
		Category: schema.ParseCategory(text),
		Origin:   OriginStruct,
		Position: pos,
	}

	for _, field := range st.Fields.List {
		local, ok := chunkTag(field)
		if !ok {
			continue
		}

		switch {
		case len(field.Names) == 0:
			return nil, fail("embedded field carries a chunk tag")
		case len(field.Names) > 1:
			return nil, fail("chunk tag on a field list with several names")
		case !field.Names[0].IsExported():
			return nil, fail("tagged field " + field.Names[0].Name + " is not exported")
		}

		rec.Fields = append(rec.Fields, Field{Name: local, Type: schema.TypeString(field.Type)})
	}

	return rec, nil
}

// chunkTag returns the local name from a chunk:"name" tag. Fields tagged
// "-" or without the tag are not part of the record.
func chunkTag(field *ast.Field) (string, bool) {
	if field.Tag == nil {
		return "", false
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return "", false
	}

	v, ok := reflect.StructTag(raw).Lookup(fieldTag)
	if !ok {
		return "", false
	}

	name, _, _ := strings.Cut(v, ",")
	if name == "" || name == "-" {
		return "", false
	}

	return name, true
}
