package compiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod is found above a directory.
var ErrNoModule = errors.New("no go.mod found")

// FindModule walks up from dir to the nearest go.mod and returns the module
// path and the module root directory.
func FindModule(dir string) (string, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}

	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			path := modfile.ModulePath(data)
			if path == "" {
				return "", "", fmt.Errorf("%s/go.mod: missing module directive", dir)
			}

			return path, dir, nil
		}

		if !os.IsNotExist(err) {
			return "", "", fmt.Errorf("reading go.mod: %w", err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", ErrNoModule
		}

		dir = parent
	}
}

// ImportPath returns the import path of dir inside the module rooted at root.
func ImportPath(modulePath, root, dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}

	if rel == "." {
		return modulePath, nil
	}

	return modulePath + "/" + filepath.ToSlash(rel), nil
}
