package compiler

import (
	"teehistorian-gen/internal/convert"
	"teehistorian-gen/internal/diagnostic"
	"teehistorian-gen/internal/match"
	"teehistorian-gen/internal/schema"
)

// reservedNames are package-level identifiers of the catalog package that
// records must not shadow.
var reservedNames = map[string]bool{
	"Chunk":       true,
	"CustomChunk": true,
	"Descriptor":  true,
	"EncodeError": true,
	"Generic":     true,
	"Map":         true,
	"Source":      true,
	"Unknown":     true,
	"Writer":      true,
}

// Check runs the schema rules plus the checks only the compiler can make:
// every field needs a wire rule and a host coercion, and generated names
// must not collide.
func Check(decls []schema.ChunkDeclaration) diagnostic.Diagnostics {
	res := schema.Validate(decls)

	for i := range decls {
		d := &decls[i]

		if reservedNames[d.Name] {
			res.AddError("reserved_name", "surface name collides with a catalog identifier", d.Name, "")
		}

		goNames := make(map[string]string, len(d.Fields))

		for j := range d.Fields {
			f := &d.Fields[j]
			if f.Name == "" {
				continue
			}

			if err := convert.Supported(f); err != nil {
				res.AddError("unsupported_conversion", err.Error(), d.Name, f.Name)
			}

			if _, _, err := convert.HostCoercion(f, "v"); err != nil {
				res.AddError("unsupported_host_type", err.Error(), d.Name, f.Name)
			}

			goName := match.GoName(f.Name)
			if other, ok := goNames[goName]; ok && other != f.Name {
				res.AddError("go_name_collision", "field maps to the same Go name as "+other, d.Name, f.Name)
			}

			goNames[goName] = f.Name
		}
	}

	return res
}
