package compiler

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/imports"

	"teehistorian-gen/internal/diagnostic"
	"teehistorian-gen/internal/schema"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated catalog file.
	Filename string
	// ModulePath is the import path prefix of the module the output lives
	// in. Empty means it is read from the nearest go.mod above OutputDir.
	ModulePath string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "chunks",
		OutputDir:   "./chunks",
		Filename:    "zz_generated.chunks.go",
	}
}

// Generator generates the chunk catalog from declarations.
type Generator struct {
	config GeneratorConfig
	logger *log.Logger

	diagnostics diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "zz_generated.chunks.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Diagnostics returns the diagnostics of the last Generate call.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diagnostics
}

// Generate validates decls and renders the catalog source.
func (g *Generator) Generate(decls []schema.ChunkDeclaration) ([]GeneratedFile, error) {
	g.diagnostics = Check(decls)

	for _, d := range g.diagnostics.All() {
		switch d.Severity {
		case diagnostic.SeverityError:
			g.logger.Error(d.Message, "code", d.Code, "chunk", d.Chunk, "field", d.Field)
		case diagnostic.SeverityWarning:
			g.logger.Warn(d.Message, "code", d.Code, "chunk", d.Chunk, "field", d.Field)
		default:
			g.logger.Info(d.Message, "code", d.Code, "chunk", d.Chunk, "field", d.Field)
		}
	}

	if err := g.diagnostics.Error(); err != nil {
		return nil, fmt.Errorf("invalid declarations: %w", err)
	}

	modulePath, err := g.modulePath()
	if err != nil {
		return nil, err
	}

	data, err := buildTemplateData(g.config.PackageName, modulePath, decls)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := g.config.Filename

	formatted, err := imports.Process(filepath.Join(g.config.OutputDir, filename), buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return []GeneratedFile{{
			Filename: filename,
			Content:  buf.Bytes(),
		}}, fmt.Errorf("formatting code: %w", err)
	}

	g.logger.Debug("generated catalog", "file", filename, "records", len(data.Records), "bytes", len(formatted))

	return []GeneratedFile{{
		Filename: filename,
		Content:  formatted,
	}}, nil
}

func (g *Generator) modulePath() (string, error) {
	if g.config.ModulePath != "" {
		return strings.TrimSuffix(g.config.ModulePath, "/"), nil
	}

	path, _, err := FindModule(g.config.OutputDir)
	if err != nil {
		return "", fmt.Errorf("resolving module path: %w", err)
	}

	return path, nil
}
