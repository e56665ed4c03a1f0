package compiler

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by chunkgen. DO NOT EDIT.

package {{.PackageName}}

{{.ImportBlock}}
{{- range .Records}}
{{template "record" .}}
{{- end}}

var generated = []Descriptor{
{{- range .Records}}
	descriptor({{printf "%q" .Name}}, {{printf "%q" .Category}}, new{{.Name}}FromValues{{range .Fields}}, {{printf "%q" .Name}}{{end}}),
{{- end}}
}
`))

func init() {
	template.Must(fileTemplate.New("record").Parse(recordTemplate))
}

const recordTemplate = `
{{- range .DocLines}}
{{.}}
{{- end}}
{{- if .Fields}}
type {{.Name}} struct {
{{- range .Fields}}
	{{.GoName}} {{.Type}}
{{- end}}
}
{{- else}}
type {{.Name}} struct{}
{{- end}}

// New{{.Name}} builds the {{.Name}} chunk from its fields in declaration order.
func New{{.Name}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Param}} {{$f.Type}}{{end}}) *{{.Name}} {
	return &{{.Name}}{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.GoName}}: {{$f.Param}}{{end -}} }
}

func (c *{{.Name}}) ChunkType() string { return {{printf "%q" .Name}} }

func (c *{{.Name}}) ToMap() *Map {
	m := NewMap({{.MapSize}})
	m.Set("type", c.ChunkType())
{{- range .Fields}}
	m.Set({{printf "%q" .Name}}, c.{{.GoName}})
{{- end}}

	return m
}

func (c *{{.Name}}) String() string {
{{- if .Fields}}
	return fmt.Sprintf({{printf "%q" .ReprFormat}}{{range .Fields}}, c.{{.GoName}}{{end}})
{{- else}}
	return {{printf "%q" .ReprFormat}}
{{- end}}
}

func (c *{{.Name}}) WireChunk() wire.Chunk {
	return wire.Chunk{
		Variant: {{printf "%q" .Variant}},
{{- if .Record}}
		Record:  {{printf "%q" .Record}},
{{- end}}
		Shape:   {{.WireShape}},
{{- if .Fields}}
		Fields: []wire.Field{
{{- range .Fields}}
			{Name: {{printf "%q" .WireName}}, Value: {{.WireExpr}}},
{{- end}}
		},
{{- end}}
	}
}

func (c *{{.Name}}) Encode() ([]byte, error) { return encode(c) }

func new{{.Name}}FromValues(values []any) (Chunk, error) {
{{- range $i, $f := .Fields}}
	{{$f.Param}}, err := {{$f.Coerce}}(values[{{$i}}])
	if err != nil {
		return nil, argError({{printf "%q" $.Name}}, {{printf "%q" $f.Name}}, err)
	}
{{end}}
	return New{{.Name}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.CoerceArg}}{{end}}), nil
}`
