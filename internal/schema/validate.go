package schema

import (
	"fmt"
	"go/token"

	"teehistorian-gen/internal/diagnostic"
)

// Validate checks the structural rules every declaration list must satisfy.
// Conversion/type compatibility is checked by the compiler, which owns the
// conversion rule table.
func Validate(decls []ChunkDeclaration) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	seen := make(map[string]struct{}, len(decls))

	for i := range decls {
		d := &decls[i]

		if d.Name == "" {
			res.AddError("empty_name", fmt.Sprintf("declaration #%d has no name", i), "", "")
			continue
		}

		if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
			res.AddError("invalid_name", fmt.Sprintf("%q is not an exported Go identifier", d.Name), d.Name, "")
		}

		if _, ok := seen[d.Name]; ok {
			res.AddError("duplicate_name", "surface name declared more than once", d.Name, "")
		}

		seen[d.Name] = struct{}{}

		validateShape(&res, d)
		validateFields(&res, d)
	}

	return res
}

func validateShape(res *diagnostic.Diagnostics, d *ChunkDeclaration) {
	if !d.Shape.IsValid() {
		res.AddError("invalid_shape", fmt.Sprintf("unknown wire shape %s", d.Shape), d.Name, "")
		return
	}

	switch d.Shape {
	case ShapeUnitVariant:
		if len(d.Fields) > 0 {
			res.AddError("unit_with_fields", "unit variants cannot declare fields", d.Name, "")
		}
	case ShapeTupleVariantNamedStruct:
		if d.Record == "" || d.Record == d.VariantName() {
			res.AddError("record_name_collision",
				"named-struct variants need a record name different from the variant tag", d.Name, "")
		}
	case ShapeInlineStruct:
		if d.Record != "" {
			res.AddWarning("record_ignored", "inline variants have no inner record; Record is ignored", d.Name, "")
		}
	}
}

func validateFields(res *diagnostic.Diagnostics, d *ChunkDeclaration) {
	seen := make(map[string]struct{}, len(d.Fields))

	for i := range d.Fields {
		f := &d.Fields[i]

		if f.Name == "" {
			res.AddError("empty_field_name", fmt.Sprintf("field #%d has no name", i), d.Name, "")
			continue
		}

		if _, ok := seen[f.Name]; ok {
			res.AddError("duplicate_field", "field declared more than once", d.Name, f.Name)
		}

		seen[f.Name] = struct{}{}

		if _, err := ParseType(f.Type); err != nil {
			res.AddError("invalid_type", err.Error(), d.Name, f.Name)
			continue
		}

		if f.Bound < 0 {
			res.AddError("invalid_bound", "bound must not be negative", d.Name, f.Name)
		}

		if f.Bound > 0 && ClassifyString(f.Type) != SourceIntegerList {
			res.AddError("invalid_bound", fmt.Sprintf("bound requires an integer list, got %s", f.Type), d.Name, f.Name)
		}

		if f.Conversion == ConvWrapAsSingleArgToken {
			res.AddInfo("single_arg_token",
				"value is wrapped as one argument token; it is not split on any delimiter", d.Name, f.Name)
		}
	}
}
