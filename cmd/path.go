package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Anti-Raid/luau-lsp/internal/domain"
	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

var sourcemapFlag string
var rootNameFlag string

// pathCmd groups the path helpers used by editor integrations.
var pathCmd = newPathCmd()

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Resolve instance and file paths",
		Long: `Answer path questions about a project's instance tree.

Lookups that produce no value print nothing and exit with status 1.`,
	}

	cmd.AddCommand(
		newPathParentCmd(),
		newPathAncestorCmd(),
		newPathScriptCmd(),
		newPathResolveCmd(),
	)

	return cmd
}

func newPathParentCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "parent <path>",
		Short:        "Print the parent of a path",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, ok := domain.GetParentPath(args[0])
			if !ok {
				return errAbsent
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), parent)

			return nil
		},
	}
}

func newPathAncestorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ancestor <path> <name>",
		Short: "Print the closest ancestor with the given name",
		Long: `Print the closest ancestor of <path> named <name>.

When no segment of the path matches, the path lies outside the game/ data
model and <name> is the project root of the sourcemap (or --root-name), the
lookup prints ProjectRoot. Without either flag a sourcemap.json is searched for
upwards from the working directory.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ancestorArgs := domain.AncestorArgs{
				Path:     args[0],
				Name:     args[1],
				RootName: viper.GetString(rootNameConfigKey),
			}

			if sourcemap := viper.GetString(sourcemapConfigKey); sourcemap != "" {
				ancestorArgs.Sourcemap = m.Path(domain.ResolvePath(sourcemap, envAdapter))
			} else {
				ancestorArgs.SearchFrom = m.Path(configFolderPath)
			}

			result, err := workflow.Ancestor(cmd.Context(), ancestorArgs)
			if err != nil {
				return err
			}

			if !result.Ok() {
				return errAbsent
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&sourcemapFlag, sourcemapFlagName, "", "path to the project sourcemap.json")
	bindFlagToConfig(cmd.Flags().Lookup(sourcemapFlagName), sourcemapConfigKey)

	cmd.Flags().StringVar(&rootNameFlag, rootNameFlagName, "", "name of the project root instance")
	bindFlagToConfig(cmd.Flags().Lookup(rootNameFlagName), rootNameConfigKey)

	return cmd
}

func newPathScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script <path>",
		Short: "Convert a relative file path into a script expression",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), domain.ConvertToScriptPath(args[0]))
		},
	}
}

func newPathResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Expand a leading ~/ to the home directory",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), domain.ResolvePath(args[0], envAdapter))
		},
	}
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
