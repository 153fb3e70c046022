package cli

import "github.com/spf13/cobra"

// NewRootCmd builds the `webcst` root command: `lint <file> [--config FILE]`
// and `parse <file>` (§6).
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "webcst",
		Short: "Parse and analyze HTML/JS/TS/Vue sources",
	}
	root.AddCommand(newLintCmd(), newParseCmd())
	return root
}
