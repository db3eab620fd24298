// Package domain implements path resolution, source normalization and the
// workflows built on top of them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Anti-Raid/luau-lsp/internal/adapter"
	"github.com/Anti-Raid/luau-lsp/internal/controller"
	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

const normalizedDirName = "normalized"

// ErrNoSources is returned when the given paths contain no Luau sources.
var ErrNoSources = errors.New("no source files found")

// NormalizeArgs contains the arguments for normalizing sources.
type NormalizeArgs struct {
	Paths   []m.Path
	Exclude []string
	Output  m.Path
	Write   bool
	Diff    bool
	Threads uint
}

// EstimateArgs contains the arguments for listing pending rewrites.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads uint
}

// ViewArgs selects either one file to diff or a reports directory to show.
type ViewArgs struct {
	Path    m.Path
	Reports m.Path
}

// AncestorArgs contains the arguments for an ancestor lookup. The root node is
// taken from RootName, else from Sourcemap, else from a sourcemap found by
// searching upwards from SearchFrom.
type AncestorArgs struct {
	Path       string
	Name       string
	RootName   string
	Sourcemap  m.Path
	SearchFrom m.Path
}

// Workflow ties adapters, the normalizer and the UI together.
type Workflow interface {
	Normalize(ctx context.Context, args NormalizeArgs) error
	Estimate(ctx context.Context, args EstimateArgs) error
	View(ctx context.Context, args ViewArgs) error
	Ancestor(ctx context.Context, args AncestorArgs) (m.AncestorResult, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.SourcemapStore
	controller.UI
	SourceLoader
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	sourcemapStore adapter.SourcemapStore,
	ui controller.UI,
	loader SourceLoader,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		SourcemapStore:  sourcemapStore,
		UI:              ui,
		SourceLoader:    loader,
	}
}

// Normalize prints, diffs or writes the normalized form of every source. With
// Write, copies go under Output/normalized and a report is saved in Output.
func (w *workflow) Normalize(ctx context.Context, args NormalizeArgs) error {
	if err := w.Start(ctx, controller.WithNormalizeMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	files, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	if len(files) == 0 {
		return ErrNoSources
	}

	threads := workerCount(args.Threads)
	w.DisplayConcurrencyInfo(ctx, threads, len(files))

	results, err := w.loadSources(ctx, files, threads)
	if err != nil {
		return err
	}

	reports := make([]m.Report, 0, len(results))
	loaded := make([]m.Source, 0, len(results))

	var errs []error

	for _, result := range results {
		report := m.Report{Path: result.file.ShortPath}

		if result.err != nil {
			slog.Error("failed to load source", "path", result.file.FullPath, "error", result.err)
			report.Error = result.err.Error()
			reports = append(reports, report)
			errs = append(errs, result.err)

			continue
		}

		report.Hash = result.source.Origin.Hash
		report.Stats = result.source.Stats

		if err := w.emit(ctx, args, result.source, len(results) > 1, &report); err != nil {
			return err
		}

		reports = append(reports, report)
		loaded = append(loaded, result.source)
	}

	if args.Write {
		if err := w.SaveReports(args.Output, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		if err := w.DisplayEstimation(ctx, loaded, nil); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	return errors.Join(errs...)
}

func (w *workflow) emit(ctx context.Context, args NormalizeArgs, source m.Source, multiple bool, report *m.Report) error {
	switch {
	case args.Write:
		target := w.JoinPath(string(args.Output), normalizedDirName, filepath.FromSlash(string(source.Origin.ShortPath)))
		if err := w.WriteFile(target, []byte(source.Normalized), 0o600); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}

		report.Output = target

		return nil

	case args.Diff:
		diff, err := SourceDiff(source)
		if err != nil {
			return err
		}

		return w.DisplayDiff(ctx, source.Origin.ShortPath, diff)
	}

	return w.DisplayNormalized(ctx, source, multiple)
}

// Estimate lists the rewrites each source needs without writing anything.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	if err := w.Start(ctx, controller.WithEstimateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	files, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		w.Close(ctx)
		return fmt.Errorf("get sources: %w", err)
	}

	results, err := w.loadSources(ctx, files, workerCount(args.Threads))
	if err != nil {
		w.Close(ctx)
		return err
	}

	sources := make([]m.Source, 0, len(results))

	var errs []error

	for _, result := range results {
		if result.err != nil {
			errs = append(errs, result.err)
			continue
		}

		sources = append(sources, result.source)
	}

	if err := w.DisplayEstimation(ctx, sources, errors.Join(errs...)); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display estimation", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// View shows the normalization diff of one file, or the saved reports when
// no file is given.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if args.Path == "" {
		reports, err := w.LoadReports(args.Reports)
		if err != nil {
			return fmt.Errorf("load reports: %w", err)
		}

		return w.DisplayReports(ctx, reports)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	source, err := w.Load(ctx, m.File{
		FullPath:  args.Path,
		ShortPath: m.Path(filepath.ToSlash(filepath.Base(string(args.Path)))),
	})
	if err != nil {
		return err
	}

	diff, err := SourceDiff(source)
	if err != nil {
		return err
	}

	if err := w.DisplayDiff(ctx, source.Origin.ShortPath, diff); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// Ancestor resolves the closest ancestor named args.Name.
func (w *workflow) Ancestor(ctx context.Context, args AncestorArgs) (m.AncestorResult, error) {
	root, err := w.resolveRoot(args)
	if err != nil {
		return m.AncestorResult{}, err
	}

	result := GetAncestorPath(args.Path, args.Name, root)
	slog.Debug("ancestor lookup", "path", args.Path, "name", args.Name, "result", result.Kind.String())

	if err := w.DisplayAncestor(ctx, result); err != nil {
		return result, fmt.Errorf("display: %w", err)
	}

	return result, nil
}

func (w *workflow) resolveRoot(args AncestorArgs) (*m.SourceNode, error) {
	if args.RootName != "" {
		return &m.SourceNode{Name: args.RootName}, nil
	}

	sourcemap := args.Sourcemap
	if sourcemap == "" && args.SearchFrom != "" {
		found, err := w.FindUp(args.SearchFrom, adapter.SourcemapFileName)
		if errors.Is(err, adapter.ErrMarkerNotFound) {
			return nil, nil
		}

		if err != nil {
			return nil, err
		}

		sourcemap = found
	}

	if sourcemap == "" {
		return nil, nil
	}

	root, err := w.LoadSourcemap(sourcemap)
	if err != nil {
		return nil, fmt.Errorf("load sourcemap: %w", err)
	}

	return root, nil
}

func workerCount(threads uint) int {
	if threads == 0 {
		return 1
	}

	return int(threads)
}
