package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Anti-Raid/luau-lsp/internal/domain"
	m "github.com/Anti-Raid/luau-lsp/internal/model"
	"github.com/Anti-Raid/luau-lsp/pkg"
)

const markdownFlagName = "markdown"

var readMarkdownFlag bool

// readCmd represents the read command.
var readCmd = newReadCmd()

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Print the normalized text of one file",
		Long: `Print the normalized text of one file as the language server sees it.
A leading ~/ is expanded. Unreadable files print nothing and exit with status 1.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := m.Path(domain.ResolvePath(args[0], envAdapter))

			text, ok := loader.ReadSource(path)
			if !ok {
				return errAbsent
			}

			if readMarkdownFlag {
				text = pkg.CodeBlock("luau", text)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)

			return nil
		},
	}

	cmd.Flags().BoolVar(&readMarkdownFlag, markdownFlagName, false, "wrap the output in a fenced luau code block")

	return cmd
}

func init() {
	rootCmd.AddCommand(readCmd)
}
