package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/webcst/internal/analysis"
	"github.com/oxhq/webcst/internal/config"
)

func newLintCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "lint <file>",
		Short: "Report diagnostics for a single source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				// Loaded to surface config errors up front; a single
				// explicit file argument has nothing for the
				// components/filters sections to restrict.
				if _, err := config.Load(configPath); err != nil {
					return err
				}
			}
			code, err := runLint(args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			os.Exit(code)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON or TOML lint config")
	return cmd
}

// runLint is the testable core of `lint` (§6): "prints one line per
// diagnostic to stderr followed by info: found N error(s); exit code 0 if
// N=0 else 1".
func runLint(path string, stderr io.Writer) (exitCode int, err error) {
	database, file, err := loadFile(path)
	if err != nil {
		return 0, err
	}
	diags, err := analysis.Diagnostics(database, file)
	if err != nil {
		return 0, err
	}
	for _, d := range diags {
		fmt.Fprintln(stderr, d.String())
	}
	fmt.Fprintf(stderr, "info: found %d error(s)\n", len(diags))
	if len(diags) == 0 {
		return 0, nil
	}
	return 1, nil
}
