package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teehistorian-gen/internal/schema"
)

func testConfig(t *testing.T) GeneratorConfig {
	t.Helper()

	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = t.TempDir()
	cfg.ModulePath = "teehistorian-gen"

	return cfg
}

func TestGenerator_Generate_Catalog(t *testing.T) {
	gen := NewGenerator(testConfig(t), nil)

	files, err := gen.Generate(schema.Declarations)
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "zz_generated.chunks.go", files[0].Filename)

	content := string(files[0].Content)

	assert.Contains(t, content, "// Code generated by chunkgen. DO NOT EDIT.")
	assert.Contains(t, content, "package chunks")
	assert.Contains(t, content, `"teehistorian-gen/internal/convert"`)
	assert.Contains(t, content, `"teehistorian-gen/wire"`)

	// Inline record
	assert.Contains(t, content, "// Join is a teehistorian chunk.\n//\n// Player joins the server\n// Category: PlayerLifecycle\ntype Join struct {")
	assert.Contains(t, content, "// NewInputNew builds the InputNew chunk from its fields in declaration order.")
	assert.Contains(t, content, "func NewJoin(clientID int32) *Join {")
	assert.Contains(t, content, `func (c *Join) ChunkType() string { return "Join" }`)
	assert.Contains(t, content, `return fmt.Sprintf("Join(client_id=%d)", c.ClientID)`)
	assert.Contains(t, content, `{Name: "cid", Value: wire.Int(c.ClientID)},`)

	// Named-struct variant
	assert.Contains(t, content, `Variant: "AuthLogin",`)
	assert.Contains(t, content, `Record:  "Auth",`)
	assert.Contains(t, content, `{Name: "auth_name", Value: wire.Bytes(convert.StringBytes(c.AuthName))},`)

	// Conversions
	assert.Contains(t, content, `{Name: "dinput", Value: wire.Ints(convert.Bounded(c.Input, 10))},`)
	assert.Contains(t, content, `{Name: "connection_id", Value: wire.UUID(convert.Identifier(c.ConnectionID))},`)
	assert.Contains(t, content, `{Name: "version_str", Value: wire.Bytes(convert.Borrow(c.VersionStr))},`)
	assert.Contains(t, content, `{Name: "args", Value: wire.BytesList(convert.SingleArgToken(c.Args))},`)

	// Unit variant
	assert.Contains(t, content, "type Eos struct{}")
	assert.Contains(t, content, `return "Eos()"`)

	// Map view keeps declaration order
	assert.Contains(t, content, "m.Set(\"type\", c.ChunkType())\n\tm.Set(\"client_id\", c.ClientID)\n\tm.Set(\"x\", c.X)\n\tm.Set(\"y\", c.Y)")

	// Surface name differs from the wire variant
	assert.Contains(t, content, `Variant: "Antibot",`)
	assert.Contains(t, content, `func (c *AntiBot) ChunkType() string { return "AntiBot" }`)

	// Descriptor table
	assert.Contains(t, content, `descriptor("Join", "PlayerLifecycle", newJoinFromValues, "client_id"),`)
	assert.Contains(t, content, `descriptor("Eos", "Special", newEosFromValues),`)

	assert.Empty(t, gen.Diagnostics().Errors)
	assert.Len(t, gen.Diagnostics().Infos, 1)
}

func TestGenerator_Generate_MatchesCheckedInCatalog(t *testing.T) {
	gen := NewGenerator(testConfig(t), nil)

	files, err := gen.Generate(schema.Declarations)
	require.NoError(t, err)

	checkedIn, err := os.ReadFile(filepath.Join("..", "..", "chunks", "zz_generated.chunks.go"))
	require.NoError(t, err)

	// Every record in the checked-in file must still be generated.
	for _, d := range schema.Declarations {
		assert.Contains(t, string(checkedIn), "type "+d.Name+" struct")
		assert.Contains(t, string(files[0].Content), "type "+d.Name+" struct")
	}
}

func TestGenerator_Generate_CustomDeclarations(t *testing.T) {
	decls := []schema.ChunkDeclaration{
		{
			Name:  "Sensor",
			Shape: schema.ShapeTupleVariant,
			Doc:   "Sensor record\n\nwith a blank line\nCategory: Testing",
			Fields: []schema.FieldSpec{
				{Name: "type", Type: "int32"},
				{Name: "level", Type: "uint8"},
				{Name: "payload", Type: "[]byte"},
				{Name: "samples", Type: "[]int32"},
			},
		},
	}

	gen := NewGenerator(testConfig(t), nil)

	files, err := gen.Generate(decls)
	require.NoError(t, err)

	content := string(files[0].Content)

	assert.Contains(t, content, "// Sensor is a teehistorian chunk.\n//\n// Sensor record\n//\n// with a blank line\n// Category: Testing")
	assert.Contains(t, content, "func NewSensor(typeValue int32, level uint8, payload []byte, samples []int32) *Sensor {")
	assert.Contains(t, content, "wire.Int(int32(c.Level))")
	assert.Contains(t, content, "wire.Bytes(c.Payload)")
	assert.Contains(t, content, "wire.Ints(c.Samples)")
	assert.Contains(t, content, "return NewSensor(typeValue, uint8(level), payload, samples), nil")
	assert.Contains(t, content, `descriptor("Sensor", "Testing", newSensorFromValues, "type", "level", "payload", "samples"),`)
}

func TestGenerator_Generate_UndocumentedRecord(t *testing.T) {
	decls := []schema.ChunkDeclaration{
		{Name: "Marker", Shape: schema.ShapeUnitVariant},
	}

	files, err := NewGenerator(testConfig(t), nil).Generate(decls)
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, "// Marker is a teehistorian chunk.")
	assert.Contains(t, content, `descriptor("Marker", "Other", newMarkerFromValues),`)
	assert.NotContains(t, content, `"fmt"`)
}

func TestGenerator_Generate_InvalidDeclarations(t *testing.T) {
	decls := []schema.ChunkDeclaration{
		{Name: "Join", Shape: schema.ShapeInlineStruct},
		{Name: "Join", Shape: schema.ShapeInlineStruct},
	}

	gen := NewGenerator(testConfig(t), nil)

	files, err := gen.Generate(decls)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.Contains(t, err.Error(), "invalid declarations")
	assert.True(t, gen.Diagnostics().HasErrors())
}

func TestGenerator_Generate_ModulePathFromGoMod(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/demo\n\ngo 1.25\n"), 0o644))

	out := filepath.Join(root, "chunks")
	require.NoError(t, os.MkdirAll(out, 0o755))

	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = out

	files, err := NewGenerator(cfg, nil).Generate(schema.Declarations[:1])
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, `"example.com/demo/internal/convert"`)
	assert.Contains(t, content, `"example.com/demo/wire"`)
}

func TestGenerator_Generate_TrailingSlashModulePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.ModulePath = "example.com/demo/"

	files, err := NewGenerator(cfg, nil).Generate(schema.Declarations[:1])
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), `"example.com/demo/wire"`)
}

func TestGenerator_Generate_PackageName(t *testing.T) {
	cfg := testConfig(t)
	cfg.PackageName = "records"
	cfg.Filename = "records_gen.go"

	files, err := NewGenerator(cfg, nil).Generate(schema.Declarations[:1])
	require.NoError(t, err)
	assert.Equal(t, "records_gen.go", files[0].Filename)
	assert.Contains(t, string(files[0].Content), "package records")
}

func TestDocLines(t *testing.T) {
	assert.Equal(t, []string{"// Join is a teehistorian chunk.", "//", "// Player joins", "// Category: X"},
		docLines("Join", "Player joins\nCategory: X"))
	assert.Equal(t, []string{"// Join is a teehistorian chunk."}, docLines("Join", "  "))
}

func TestParamName(t *testing.T) {
	tests := map[string]string{
		"client_id":     "clientID",
		"type":          "typeValue",
		"values":        "valuesValue",
		"err":           "errValue",
		"version_str":   "versionStr",
		"connection_id": "connectionID",
	}

	for in, want := range tests {
		assert.Equal(t, want, paramName(in), in)
	}
}
