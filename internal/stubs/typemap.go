package stubs

import "teehistorian-gen/internal/schema"

var scalarTypes = map[schema.SourceType]string{
	schema.SourceInteger:    "int",
	schema.SourceFloat:      "float",
	schema.SourceBoolean:    "bool",
	schema.SourceText:       "str",
	schema.SourceBytes:      "bytes",
	schema.SourceIdentifier: "str",
}

// PythonType maps a Go type expression to a Python annotation. Types without
// a mapping become Any, so emission never fails on a field type.
func PythonType(expr string) string {
	e, err := schema.ParseType(expr)
	if err != nil {
		return "Any"
	}

	st := schema.Classify(e)

	if t, ok := scalarTypes[st]; ok {
		return t
	}

	switch st {
	case schema.SourceIntegerList, schema.SourceBoundedIntegerList:
		return "List[int]"
	case schema.SourceList:
		return "List[Any]"
	case schema.SourceMap:
		return "Dict[Any, Any]"
	case schema.SourceOptional:
		// One level only: nested optionals and collections become Any.
		inner, ok := scalarTypes[schema.Classify(schema.OptionalElem(e))]
		if !ok {
			inner = "Any"
		}

		return "Optional[" + inner + "]"
	default:
		return "Any"
	}
}
