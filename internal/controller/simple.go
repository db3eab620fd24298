package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
	"github.com/Anti-Raid/luau-lsp/pkg"
)

const shortHashLen = 8

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = resolveStartConfig(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errorf("Normalizing %d file(s) with %d worker(s)\n", count, threads)
}

// DisplayEstimation prints a table of the rewrites each source needs.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, sources []m.Source, err error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderEstimationTable(sources))

	return nil
}

func renderEstimationTable(sources []m.Source) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Pragma", "Functions", "Requires", "Modules"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	var functions, requires int

	for _, source := range sources {
		stats := source.Stats
		pragma := ""
		if stats.PragmaStripped {
			pragma = "yes"
		}

		table.Append([]string{
			sourcePath(source),
			pragma,
			fmt.Sprintf("%d", stats.Functions),
			fmt.Sprintf("%d", stats.Requires+stats.RequireCalls),
			strings.Join(stats.Modules, ", "),
		})

		functions += stats.Functions
		requires += stats.Requires + stats.RequireCalls
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sources)),
		"",
		fmt.Sprintf("%d", functions),
		fmt.Sprintf("%d", requires),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayNormalized prints the normalized text, preceded by a path comment
// when several files are printed.
func (s *SimpleUI) DisplayNormalized(ctx context.Context, source m.Source, multiple bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if multiple {
		s.printf("-- %s\n", sourcePath(source))
	}

	s.printf("%s\n", source.Normalized)

	return nil
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, _ m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", diff)

	return nil
}

// DisplayReports prints previously saved reports as a table.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Hash", "Rewrites", "Output", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, report := range reports {
		hash := report.Hash
		if len(hash) > shortHashLen {
			hash = hash[:shortHashLen]
		}

		table.Append([]string{
			string(report.Path),
			hash,
			fmt.Sprintf("%d", report.Stats.Total()),
			string(report.Output),
			pkg.FirstLine(report.Error),
		})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayAncestor prints the ancestor path, the ProjectRoot sentinel, or
// nothing.
func (s *SimpleUI) DisplayAncestor(ctx context.Context, result m.AncestorResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result.Ok() {
		s.printf("%s\n", result.String())
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func sourcePath(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	if source.Origin.ShortPath != "" {
		return string(source.Origin.ShortPath)
	}

	return string(source.Origin.FullPath)
}
