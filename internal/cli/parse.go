package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxhq/webcst/internal/syntax"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Print a syntax-tree dump for a single source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], cmd.OutOrStdout())
		},
	}
}

// runParse is the testable core of `parse` (§6): "prints the tree dump to
// stdout".
func runParse(path string, stdout io.Writer) error {
	database, file, err := loadFile(path)
	if err != nil {
		return err
	}
	ext, _ := database.FileExtension(file)
	tree, err := database.AST(database.FileSource(file), strings.TrimPrefix(ext, "."))
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, syntax.Dump(tree))
	return nil
}
