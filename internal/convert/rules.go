package convert

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"teehistorian-gen/internal/schema"
)

// ErrNoRule is returned when a field's (source type, conversion) pair has no
// wire encoding.
var ErrNoRule = errors.New("no conversion rule")

// RulePair keys the rule table.
type RulePair struct {
	Source     schema.SourceType
	Conversion schema.Conversion
}

// rule renders the wire value expression for one pair. elem restricts the
// accepted Go type expression when set.
type rule struct {
	expr string
	elem string
}

var rules map[RulePair]rule

func init() {
	rules = map[RulePair]rule{}

	// Identity
	rules[RulePair{schema.SourceInteger, schema.ConvIdentity}] = rule{expr: "wire.Int({{if .cast}}{{.cast}}({{.src}}){{else}}{{.src}}{{end}})"}
	rules[RulePair{schema.SourceBytes, schema.ConvIdentity}] = rule{expr: "wire.Bytes({{.src}})"}
	rules[RulePair{schema.SourceText, schema.ConvIdentity}] = rule{expr: "wire.Bytes([]byte({{.src}}))"}
	rules[RulePair{schema.SourceIdentifier, schema.ConvIdentity}] = rule{expr: "wire.UUID({{.src}})"}
	rules[RulePair{schema.SourceIntegerList, schema.ConvIdentity}] = rule{expr: "wire.Ints({{.src}})", elem: "[]int32"}
	rules[RulePair{schema.SourceBoundedIntegerList, schema.ConvIdentity}] = rule{
		expr: "wire.Ints(convert.Bounded({{.src}}, {{.bound}}))",
		elem: "[]int32",
	}

	// StringToBytes
	rules[RulePair{schema.SourceText, schema.ConvStringToBytes}] = rule{expr: "wire.Bytes(convert.StringBytes({{.src}}))"}

	// ListToBorrowedView
	rules[RulePair{schema.SourceBytes, schema.ConvListToBorrowedView}] = rule{expr: "wire.Bytes(convert.Borrow({{.src}}))"}
	rules[RulePair{schema.SourceIntegerList, schema.ConvListToBorrowedView}] = rule{
		expr: "wire.Ints(convert.Borrow({{.src}}))",
		elem: "[]int32",
	}

	// ParseIdentifierWithZeroDefault
	rules[RulePair{schema.SourceText, schema.ConvParseIdentifierWithZeroDefault}] = rule{
		expr: "wire.UUID(convert.Identifier({{.src}}))",
	}

	// WrapAsSingleArgToken
	rules[RulePair{schema.SourceText, schema.ConvWrapAsSingleArgToken}] = rule{
		expr: "wire.BytesList(convert.SingleArgToken({{.src}}))",
	}
}

// Supported reports whether the field has a wire encoding.
func Supported(f *schema.FieldSpec) error {
	r, ok := rules[RulePair{f.SourceType(), f.Conversion}]
	if !ok {
		return fmt.Errorf("%w: %s with %s", ErrNoRule, f.SourceType(), f.Conversion)
	}

	if r.elem != "" && normalizeType(f.Type) != r.elem {
		return fmt.Errorf("%w: %s with %s requires %s, got %s", ErrNoRule, f.SourceType(), f.Conversion, r.elem, f.Type)
	}

	return nil
}

// Expression returns the Go expression building the wire value of field f
// read from src.
func Expression(f *schema.FieldSpec, src string) (string, error) {
	if err := Supported(f); err != nil {
		return "", err
	}

	r := rules[RulePair{f.SourceType(), f.Conversion}]

	tmpl, err := template.New("rule").Parse(r.expr)
	if err != nil {
		return "", fmt.Errorf("parsing rule template: %w", err)
	}

	castTo := "int32"
	if normalizeType(f.Type) == "int32" {
		castTo = ""
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, map[string]any{
		"src":   src,
		"cast":  castTo,
		"bound": f.Bound,
	})
	if err != nil {
		return "", fmt.Errorf("executing rule template: %w", err)
	}

	return buf.String(), nil
}

func normalizeType(expr string) string {
	e, err := schema.ParseType(expr)
	if err != nil {
		return expr
	}

	return schema.TypeString(e)
}

// hostCoercions name the coercion helper used by dynamic constructors per
// source type.
var hostCoercions = map[schema.SourceType]string{
	schema.SourceInteger:            "convert.Int32",
	schema.SourceFloat:              "convert.Float64",
	schema.SourceBoolean:            "convert.Bool",
	schema.SourceText:               "convert.Text",
	schema.SourceBytes:              "convert.Bytes",
	schema.SourceIntegerList:        "convert.Int32s",
	schema.SourceBoundedIntegerList: "convert.Int32s",
	schema.SourceIdentifier:         "convert.UUID",
}

// HostCoercion returns the helper coercing a dynamic host value into field
// f, and the expression converting the helper's result (bound to v) to the
// declared Go type.
func HostCoercion(f *schema.FieldSpec, v string) (fn, arg string, err error) {
	st := f.SourceType()

	fn, ok := hostCoercions[st]
	if !ok {
		return "", "", fmt.Errorf("%w: no host coercion for %s", ErrNoRule, st)
	}

	typ := normalizeType(f.Type)

	switch st {
	case schema.SourceInteger:
		if typ != "int32" {
			return fn, typ + "(" + v + ")", nil
		}
	case schema.SourceFloat:
		if typ != "float64" {
			return fn, typ + "(" + v + ")", nil
		}
	case schema.SourceIntegerList, schema.SourceBoundedIntegerList:
		if typ != "[]int32" {
			return "", "", fmt.Errorf("%w: no host coercion for %s", ErrNoRule, typ)
		}
	case schema.SourceBytes:
		if typ != "[]byte" {
			return fn, typ + "(" + v + ")", nil
		}
	}

	return fn, v, nil
}
