package reflector

import "fmt"

// Origin tells which declaration form a record was read from.
type Origin string

const (
	OriginDeclaration Origin = "declaration"
	OriginStruct      Origin = "struct"
)

// Field is one readable field of a record.
type Field struct {
	// Name is the local field name.
	Name string `yaml:"name"`
	// Type is the Go type expression as written in the source.
	Type string `yaml:"type"`
}

// Record is the metadata reconstructed for one surface name.
type Record struct {
	Name     string  `yaml:"name"`
	Doc      string  `yaml:"doc,omitempty"`
	Category string  `yaml:"category"`
	Fields   []Field `yaml:"fields,omitempty"`
	Origin   Origin  `yaml:"origin"`
	// Position is "file:line:col" of the declaration.
	Position string `yaml:"position"`
}

// DeclarationError reports a declaration that could not be read as a
// well-formed record.
type DeclarationError struct {
	Position string
	// Name is the surface name when it could be read.
	Name   string
	Reason string
}

func (e *DeclarationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Position, e.Reason)
	}

	return fmt.Sprintf("%s: %s: %s", e.Position, e.Name, e.Reason)
}
