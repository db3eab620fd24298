package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

const diffContextLines = 3

// SourceDiff returns a unified diff from the raw to the normalized text.
func SourceDiff(source m.Source) (string, error) {
	name := ""
	if source.Origin != nil {
		name = string(source.Origin.ShortPath)
		if name == "" {
			name = string(source.Origin.FullPath)
		}
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(source.Raw),
		B:        difflib.SplitLines(source.Normalized),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  diffContextLines,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", name, err)
	}

	return diff, nil
}
