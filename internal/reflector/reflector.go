package reflector

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"teehistorian-gen/internal/diagnostic"
)

// LoadMode only asks for syntax; declarations are never type-checked.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// Reflector collects records from parsed source files.
type Reflector struct {
	dir    string
	fset   *token.FileSet
	logger *log.Logger

	records     map[string]*Record
	diagnostics diagnostic.Diagnostics
}

// NewReflector creates a Reflector resolving package patterns relative to
// dir. A nil logger discards output.
func NewReflector(dir string, logger *log.Logger) *Reflector {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Reflector{
		dir:     dir,
		fset:    token.NewFileSet(),
		logger:  logger,
		records: make(map[string]*Record),
	}
}

// LoadPackages reads every non-generated file of the packages matching
// patterns (e.g. "./internal/schema", "./chunks").
func (r *Reflector) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  r.dir,
		Fset: r.fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		r.logger.Debug("reading package", "path", pkg.PkgPath, "files", len(pkg.Syntax))

		for _, file := range pkg.Syntax {
			r.addFile(file)
		}
	}

	return nil
}

// ParseFiles reads the given Go source files.
func (r *Reflector) ParseFiles(paths ...string) error {
	for _, path := range paths {
		file, err := parser.ParseFile(r.fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		r.addFile(file)
	}

	return nil
}

// ParseSource reads one in-memory Go source file.
func (r *Reflector) ParseSource(filename string, src []byte) error {
	file, err := parser.ParseFile(r.fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	r.addFile(file)

	return nil
}

// Records returns the collected records sorted by surface name.
func (r *Reflector) Records() []Record {
	res := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		res = append(res, *rec)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})

	return res
}

// Diagnostics returns the warnings for skipped declarations and the errors
// for duplicate surface names.
func (r *Reflector) Diagnostics() diagnostic.Diagnostics {
	return r.diagnostics
}

func (r *Reflector) addFile(file *ast.File) {
	if ast.IsGenerated(file) {
		r.logger.Debug("skipping generated file", "file", r.fset.Position(file.Pos()).Filename)

		return
	}

	for _, rec := range r.declarationRecords(file) {
		r.add(rec)
	}

	for _, rec := range r.structRecords(file) {
		r.add(rec)
	}
}

func (r *Reflector) add(rec *Record) {
	if prev, ok := r.records[rec.Name]; ok {
		r.diagnostics.AddError("duplicate_name",
			fmt.Sprintf("surface name declared at %s and %s", prev.Position, rec.Position), rec.Name, "")

		return
	}

	r.records[rec.Name] = rec
}

func (r *Reflector) skip(err *DeclarationError) {
	r.logger.Warn("skipping declaration", "pos", err.Position, "chunk", err.Name, "reason", err.Reason)
	r.diagnostics.AddWarningAt(err.Position, "malformed_declaration", err.Reason, err.Name)
}

func (r *Reflector) position(pos token.Pos) string {
	return r.fset.Position(pos).String()
}
