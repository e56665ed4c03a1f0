// Package main provides the CLI entrypoint for chunkgen.
//
// chunkgen derives every artifact of the teehistorian chunk catalog from
// one set of declarations:
//   - generate renders the Go record types and encoders (package chunks)
//   - stubs reflects the declarations from source and writes .pyi stubs
//   - describe dumps the reflected records as YAML
//   - catalog lists the compiled registry by category
//   - encode builds one record by name and prints its teehistorian bytes
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
