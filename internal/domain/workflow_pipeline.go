package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

// loadResult is the outcome of loading one file. Results keep the order of
// the input files.
type loadResult struct {
	file   m.File
	source m.Source
	err    error
}

// loadSources loads and normalizes files on up to threads goroutines. A file
// that fails to load is reported in its result; only cancellation aborts the
// whole batch.
func (w *workflow) loadSources(ctx context.Context, files []m.File, threads int) ([]loadResult, error) {
	results := make([]loadResult, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			source, err := w.Load(groupCtx, file)
			results[i] = loadResult{file: file, source: source, err: err}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
