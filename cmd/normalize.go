package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Anti-Raid/luau-lsp/internal/domain"
)

var normalizeParallelFlag uint
var normalizeWriteFlag bool
var normalizeDiffFlag bool

// normalizeCmd represents the normalize command.
var normalizeCmd = newNormalizeCmd()

func newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [paths...]",
		Short: "Normalize AntiRaid sources for the language server",
		Long:  normalizeLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Normalize(cmd.Context(), domain.NormalizeArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Output:  outputDir(),
				Write:   viper.GetBool(writeConfigKey),
				Diff:    normalizeDiffFlag,
				Threads: viper.GetUint(runParallelConfigKey),
			})
		},
	}

	cmd.Flags().UintVarP(&normalizeParallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of files to normalize in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().BoolVarP(&normalizeWriteFlag, writeFlagName, "w", defaultWrite, "write normalized files and a report into the output directory")
	bindFlagToConfig(cmd.Flags().Lookup(writeFlagName), writeConfigKey)

	cmd.Flags().BoolVarP(&normalizeDiffFlag, diffFlagName, "d", false, "print a unified diff instead of the normalized text")
	cmd.MarkFlagsMutuallyExclusive(writeFlagName, diffFlagName)

	return cmd
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
