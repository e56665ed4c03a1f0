package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"Player joins the server\nCategory: PlayerLifecycle", "PlayerLifecycle"},
		{"Category:Input", "Input"},
		{"Category:   ServerEvent trailing words", "ServerEvent"},
		{"no marker at all", DefaultCategory},
		{"Category:   ", DefaultCategory},
		{"", DefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.doc))
		})
	}
}

func TestClassifyString(t *testing.T) {
	tests := []struct {
		expr string
		want SourceType
	}{
		{"int32", SourceInteger},
		{"uint64", SourceInteger},
		{"float64", SourceFloat},
		{"bool", SourceBoolean},
		{"string", SourceText},
		{"[]byte", SourceBytes},
		{"[]uint8", SourceBytes},
		{"[]int32", SourceIntegerList},
		{"[10]int32", SourceIntegerList},
		{"[]string", SourceList},
		{"*int32", SourceOptional},
		{"(*string)", SourceOptional},
		{"map[string]int", SourceMap},
		{"uuid.UUID", SourceIdentifier},
		{"time.Time", SourceUnknown},
		{"Foo", SourceUnknown},
		{"[][", SourceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyString(tt.expr))
		})
	}
}

func TestOptionalElem(t *testing.T) {
	e, err := ParseType("*[]int32")
	require.NoError(t, err)

	elem := OptionalElem(e)
	require.NotNil(t, elem)
	assert.Equal(t, "[]int32", TypeString(elem))

	e, err = ParseType("int32")
	require.NoError(t, err)
	assert.Nil(t, OptionalElem(e))
}

func TestFieldSpec_SourceTypeAndWireName(t *testing.T) {
	bounded := FieldSpec{Name: "input", Type: "[]int32", Wire: "dinput", Bound: 10}
	assert.Equal(t, SourceBoundedIntegerList, bounded.SourceType())
	assert.Equal(t, "dinput", bounded.WireName())

	plain := FieldSpec{Name: "x", Type: "int32"}
	assert.Equal(t, SourceInteger, plain.SourceType())
	assert.Equal(t, "x", plain.WireName())
}

func TestChunkDeclaration_Names(t *testing.T) {
	auth := ChunkDeclaration{Name: "AuthLogin", Shape: ShapeTupleVariantNamedStruct, Record: "Auth"}
	assert.Equal(t, "AuthLogin", auth.VariantName())
	assert.Equal(t, "Auth", auth.RecordName())

	antibot := ChunkDeclaration{Name: "AntiBot", Shape: ShapeTupleVariant, Variant: "Antibot"}
	assert.Equal(t, "Antibot", antibot.VariantName())
	assert.Equal(t, "Antibot", antibot.RecordName())

	join := ChunkDeclaration{Name: "Join", Shape: ShapeInlineStruct, Record: "Ignored"}
	assert.Empty(t, join.RecordName())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "TupleVariantNamedStruct", ShapeTupleVariantNamedStruct.String())
	assert.Equal(t, "UnitVariant", ShapeUnitVariant.String())
	assert.Equal(t, "WireShape(0)", WireShape(0).String())
	assert.Equal(t, "ParseIdentifierWithZeroDefault", ConvParseIdentifierWithZeroDefault.String())
	assert.Equal(t, "WrapAsSingleArgToken", ConvWrapAsSingleArgToken.String())
	assert.Equal(t, "BoundedIntegerList", SourceBoundedIntegerList.String())
	assert.Equal(t, "Identifier", SourceIdentifier.String())
}

func TestDeclarations_Categories(t *testing.T) {
	byName := make(map[string]string, len(Declarations))
	for i := range Declarations {
		byName[Declarations[i].Name] = Declarations[i].Category()
	}

	assert.Equal(t, "PlayerLifecycle", byName["Join"])
	assert.Equal(t, "Input", byName["InputNew"])
	assert.Equal(t, "Authentication", byName["AuthLogin"])
	assert.Equal(t, "Special", byName["Eos"])
}
