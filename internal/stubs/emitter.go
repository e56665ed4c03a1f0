package stubs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"teehistorian-gen/internal/reflector"
	"teehistorian-gen/internal/schema"
)

const indent = "    "

// DefaultModule is the Python module the stubs describe.
const DefaultModule = "teehistorian_py._rust"

// ErrNoRecords is returned when there is nothing to describe.
var ErrNoRecords = errors.New("no records to emit")

// pyKeywords cannot be used as parameter names.
var pyKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// Emitter renders stub documents.
type Emitter struct {
	module string
	logger *log.Logger
}

// NewEmitter creates an Emitter for the given Python module name. An empty
// module means DefaultModule.
func NewEmitter(module string, logger *log.Logger) *Emitter {
	if module == "" {
		module = DefaultModule
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Emitter{module: module, logger: logger}
}

type stubData struct {
	Module     string
	Categories []categoryData
	All        []string
}

type categoryData struct {
	Name    string
	Alias   string
	Classes []classData
}

type classData struct {
	Name     string
	DocLines []string
	Fields   []fieldData
}

type fieldData struct {
	Name string
	Type string
}

// Emit renders the stub document. Output depends only on the records, not
// on their order.
func (e *Emitter) Emit(records []reflector.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	records = slices.Clone(records)
	slices.SortFunc(records, func(a, b reflector.Record) int {
		return strings.Compare(a.Name, b.Name)
	})

	data := stubData{Module: e.module}
	byCategory := make(map[string][]classData)

	for i := range records {
		rec := &records[i]

		category := rec.Category
		if category == "" {
			category = schema.DefaultCategory
		}

		byCategory[category] = append(byCategory[category], e.class(rec))
		data.All = append(data.All, rec.Name)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}

	slices.Sort(categories)

	for _, c := range categories {
		data.Categories = append(data.Categories, categoryData{
			Name:    c,
			Alias:   c + "Chunk",
			Classes: byCategory[c],
		})
	}

	var buf bytes.Buffer
	if err := stubTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing stub template: %w", err)
	}

	e.logger.Debug("rendered stubs", "records", len(records), "categories", len(categories), "bytes", buf.Len())

	return buf.Bytes(), nil
}

func (e *Emitter) class(rec *reflector.Record) classData {
	cls := classData{
		Name:     rec.Name,
		DocLines: docstring(rec.Name, rec.Doc),
	}

	for _, f := range rec.Fields {
		typ := PythonType(f.Type)
		if typ == "Any" {
			e.logger.Debug("no python type for field", "chunk", rec.Name, "field", f.Name, "type", f.Type)
		}

		cls.Fields = append(cls.Fields, fieldData{Name: pyName(f.Name), Type: typ})
	}

	return cls
}

func pyName(name string) string {
	if pyKeywords[name] {
		return name + "_"
	}

	return name
}

// docstring renders doc as indented docstring lines of a class body.
func docstring(name, doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return []string{indent + `"""Chunk type: ` + name + `"""`}
	}

	doc = strings.ReplaceAll(doc, `\`, `\\`)
	doc = strings.ReplaceAll(doc, `"""`, `\"\"\"`)

	lines := strings.Split(doc, "\n")
	if len(lines) == 1 {
		return []string{indent + `"""` + lines[0] + `"""`}
	}

	res := make([]string, 0, len(lines)+1)
	res = append(res, indent+`"""`+strings.TrimSpace(lines[0]))

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			res = append(res, "")

			continue
		}

		res = append(res, indent+line)
	}

	return append(res, indent+`"""`)
}
