package compiler

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted stores source that failed to format next to the
// intended output, so the template bug can be inspected. Best-effort.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, debugName(filename)), content, filePerm)
}

// debugName keeps the .go suffix for syntax highlighting without colliding
// with the real output.
func debugName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}
