package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files to outputDir and reports how many were
// changed. Files whose content is already up to date are left untouched, and
// stale debug sidecars of written files are removed.
func WriteFiles(files []GeneratedFile, outputDir string) (int, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	changed := 0

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		current, err := os.ReadFile(outputPath)
		if err == nil && bytes.Equal(current, file.Content) {
			continue
		}

		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return changed, fmt.Errorf("reading file %s: %w", file.Filename, err)
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return changed, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		changed++

		err = os.Remove(filepath.Join(outputDir, debugName(file.Filename)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return changed, fmt.Errorf("removing debug file for %s: %w", file.Filename, err)
		}
	}

	return changed, nil
}
