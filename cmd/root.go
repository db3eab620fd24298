// Package cmd provides the root command and CLI setup for arlsp.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Anti-Raid/luau-lsp/internal/adapter"
	"github.com/Anti-Raid/luau-lsp/internal/controller"
	"github.com/Anti-Raid/luau-lsp/internal/domain"
	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var envAdapter adapter.EnvAdapter
var reportStore adapter.ReportStore
var sourcemapStore adapter.SourcemapStore
var loader domain.SourceLoader
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// verboseFlag forces debug logging.
var verboseFlag bool

// errAbsent is returned by lookups that produced no value.
var errAbsent = errors.New("no result")

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	envAdapter = adapter.NewOSEnvAdapter()
	reportStore = adapter.NewReportStore()
	sourcemapStore = adapter.NewSourcemapStore()
	loader = domain.NewSourceLoader(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		sourcemapStore,
		ui,
		loader,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./lib    scan multiple directories (not recursive)`

const rootLongDescription = `arlsp prepares AntiRaid flavoured Luau for the Luau language server.

It strips @pragma headers, names anonymous entrypoint functions and rewrites
require "@antiraid/<module>" imports into typed stubs, and it answers the
path questions editors ask about a project's instance tree.

` + pathPatternsHelp

const normalizeLongDescription = `Normalize AntiRaid sources for the given paths (default: ./...).

By default the normalized text is printed. Use --diff to print a unified diff
instead, or --write to write copies and a report into the output directory.

` + pathPatternsHelp

const listLongDescription = `List source files and the rewrites normalization applies to them.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arlsp",
		Short: "AntiRaid Luau language server tooling",
		Long:  rootLongDescription,
		// Errors are printed by Execute so absent lookups can exit quietly.
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := adapter.LoadDotEnv(dotEnvFileName); err != nil {
				return err
			}

			configureLogger(viper.GetString(logFilenameKey), verboseFlag || viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	if cmd.PersistentFlags().Lookup(outputFlagName) != nil {
		return
	}

	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultOutputDir,
			"output directory for normalized files and reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errAbsent) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// outputDir returns the configured output directory with ~ expanded.
func outputDir() m.Path {
	return m.Path(domain.ResolvePath(viper.GetString(outputFlagName), envAdapter))
}
