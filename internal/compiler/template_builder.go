package compiler

import (
	"fmt"
	"go/token"
	"strings"

	"teehistorian-gen/internal/convert"
	"teehistorian-gen/internal/match"
	"teehistorian-gen/internal/schema"
)

// templateData holds all data needed for the catalog template.
type templateData struct {
	PackageName string
	ImportBlock string
	Records     []recordData
}

// recordData is one declaration prepared for rendering.
type recordData struct {
	Name       string
	Variant    string
	Record     string
	WireShape  string
	Category   string
	DocLines   []string
	ReprFormat string
	MapSize    int
	Fields     []fieldData
}

// fieldData is one declared field prepared for rendering.
type fieldData struct {
	// Name is the declared (map view) name.
	Name      string
	GoName    string
	Param     string
	Type      string
	WireName  string
	WireExpr  string
	Coerce    string
	CoerceArg string
}

// shapeExprs maps declaration shapes to the codec's tree shapes.
var shapeExprs = map[schema.WireShape]string{
	schema.ShapeTupleVariant:            "wire.ShapeTuple",
	schema.ShapeTupleVariantNamedStruct: "wire.ShapeTuple",
	schema.ShapeInlineStruct:            "wire.ShapeInline",
	schema.ShapeUnitVariant:             "wire.ShapeUnit",
}

// reservedParams are identifiers the generated functions use themselves.
var reservedParams = map[string]bool{
	"c": true, "m": true, "err": true, "values": true,
	"fmt": true, "wire": true, "convert": true,
}

func buildTemplateData(pkgName, modulePath string, decls []schema.ChunkDeclaration) (*templateData, error) {
	data := &templateData{
		PackageName: pkgName,
		ImportBlock: importBlock(
			[]string{"fmt"},
			[]string{modulePath + "/internal/convert", modulePath + "/wire"},
		),
	}

	for i := range decls {
		rec, err := buildRecord(&decls[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", decls[i].Name, err)
		}

		data.Records = append(data.Records, *rec)
	}

	return data, nil
}

func buildRecord(d *schema.ChunkDeclaration) (*recordData, error) {
	rec := &recordData{
		Name:      d.Name,
		Variant:   d.VariantName(),
		Record:    d.RecordName(),
		WireShape: shapeExprs[d.Shape],
		Category:  d.Category(),
		DocLines:  docLines(d.Name, d.Doc),
		MapSize:   len(d.Fields) + 1,
	}

	reprParts := make([]string, 0, len(d.Fields))

	for i := range d.Fields {
		f := &d.Fields[i]

		fd, err := buildField(f)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		rec.Fields = append(rec.Fields, *fd)
		reprParts = append(reprParts, f.Name+"="+reprVerb(f.SourceType()))
	}

	rec.ReprFormat = d.Name + "(" + strings.Join(reprParts, ", ") + ")"

	return rec, nil
}

func buildField(f *schema.FieldSpec) (*fieldData, error) {
	goName := match.GoName(f.Name)
	param := paramName(f.Name)

	wireExpr, err := convert.Expression(f, "c."+goName)
	if err != nil {
		return nil, err
	}

	coerce, arg, err := convert.HostCoercion(f, param)
	if err != nil {
		return nil, err
	}

	typeExpr, err := schema.ParseType(f.Type)
	if err != nil {
		return nil, err
	}

	return &fieldData{
		Name:      f.Name,
		GoName:    goName,
		Param:     param,
		Type:      schema.TypeString(typeExpr),
		WireName:  f.WireName(),
		WireExpr:  wireExpr,
		Coerce:    coerce,
		CoerceArg: arg,
	}, nil
}

func paramName(field string) string {
	name := match.LocalName(field)
	if token.IsKeyword(name) || reservedParams[name] {
		return name + "Value"
	}

	return name
}

// reprVerb selects the fmt verb used for a field in String().
func reprVerb(st schema.SourceType) string {
	switch st {
	case schema.SourceInteger:
		return "%d"
	case schema.SourceFloat:
		return "%g"
	case schema.SourceBoolean:
		return "%t"
	case schema.SourceText:
		return "%q"
	case schema.SourceIdentifier:
		return "%s"
	default:
		return "%v"
	}
}

// docLines renders the declaration doc as comment lines, the first one
// prefixed with the record name.
func docLines(name, doc string) []string {
	res := []string{"// " + name + " is a teehistorian chunk."}

	doc = strings.TrimSpace(doc)
	if doc == "" {
		return res
	}

	res = append(res, "//")

	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			res = append(res, "//")

			continue
		}

		res = append(res, "// "+line)
	}

	return res
}

func importBlock(std, local []string) string {
	var b strings.Builder

	b.WriteString("import (\n")

	for _, p := range std {
		fmt.Fprintf(&b, "\t%q\n", p)
	}

	if len(std) > 0 && len(local) > 0 {
		b.WriteString("\n")
	}

	for _, p := range local {
		fmt.Fprintf(&b, "\t%q\n", p)
	}

	b.WriteString(")")

	return b.String()
}
