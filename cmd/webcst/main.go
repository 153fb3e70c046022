// Command webcst is the CLI entry point for the analysis engine: `lint
// <file> [--config FILE]` and `parse <file>` (§6).
package main

import (
	"fmt"
	"os"

	"github.com/oxhq/webcst/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
