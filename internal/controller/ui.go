// Package controller provides output adapters for displaying arlsp results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeNormalize
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithNormalizeMode sets the UI to normalization mode.
func WithNormalizeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeNormalize
	}
}

// WithViewMode sets the UI to view mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeNormalize}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how workflow results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(ctx context.Context, threads int, count int)
	DisplayEstimation(ctx context.Context, sources []m.Source, err error) error
	DisplayNormalized(ctx context.Context, source m.Source, multiple bool) error
	DisplayDiff(ctx context.Context, path m.Path, diff string) error
	DisplayReports(ctx context.Context, reports []m.Report) error
	DisplayAncestor(ctx context.Context, result m.AncestorResult) error
}

// NewUI returns the interactive TUI when the output is a terminal and the
// simple text UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	simple := NewSimpleUI(cmd)
	if tty {
		return NewTUI(simple)
	}

	return simple
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
