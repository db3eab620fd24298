package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Anti-Raid/luau-lsp/internal/domain"
	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "View a normalization diff or saved reports",
		Long: `View the normalization diff of a single file. Without a file argument the
reports saved by "normalize --write" in the output directory are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewArgs := domain.ViewArgs{Reports: outputDir()}
			if len(args) == 1 {
				viewArgs.Path = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), viewArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
