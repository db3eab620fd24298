package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Anti-Raid/luau-lsp/internal/adapter"
	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

// SourceLoader reads source files and normalizes them before anything else
// sees their text.
type SourceLoader interface {
	// Load reads, hashes and normalizes a file.
	Load(ctx context.Context, file m.File) (m.Source, error)
	// ReadSource returns the normalized text of path, or false when the file
	// cannot be read for any reason.
	ReadSource(path m.Path) (string, bool)
}

type sourceLoader struct {
	adapter.SourceFSAdapter
}

// NewSourceLoader creates a SourceLoader backed by fsAdapter.
func NewSourceLoader(fsAdapter adapter.SourceFSAdapter) SourceLoader {
	return &sourceLoader{SourceFSAdapter: fsAdapter}
}

func (l *sourceLoader) ReadSource(path m.Path) (string, bool) {
	data, err := l.ReadFile(path)
	if err != nil {
		slog.Debug("source unreadable", "path", path, "error", err)
		return "", false
	}

	return NormalizeAntiraid(string(data)), true
}

func (l *sourceLoader) Load(ctx context.Context, file m.File) (m.Source, error) {
	if err := ctx.Err(); err != nil {
		return m.Source{}, err
	}

	data, err := l.ReadFile(file.FullPath)
	if err != nil {
		return m.Source{}, fmt.Errorf("read %s: %w", file.FullPath, err)
	}

	hash, err := l.HashFile(file.FullPath)
	if err != nil {
		return m.Source{}, fmt.Errorf("hash %s: %w", file.FullPath, err)
	}

	raw := string(data)
	normalized, stats := Normalize(raw)

	origin := file
	origin.Hash = hash

	slog.Debug("normalized source", "path", file.FullPath, "rewrites", stats.Total())

	return m.Source{
		Origin:     &origin,
		Raw:        raw,
		Normalized: normalized,
		Stats:      stats,
	}, nil
}
