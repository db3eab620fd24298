package adapter

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

// SourcemapFileName is the conventional sourcemap file name.
const SourcemapFileName = "sourcemap.json"

// ErrEmptySourcemap is returned when a sourcemap has no root name.
var ErrEmptySourcemap = errors.New("sourcemap has no root node")

// SourcemapStore loads the instance tree a project is mapped onto.
type SourcemapStore interface {
	LoadSourcemap(path m.Path) (*m.SourceNode, error)
}

type sourcemapStore struct{}

// NewSourcemapStore returns a SourcemapStore reading JSON or YAML files.
// JSON sourcemaps decode through the YAML parser unchanged.
func NewSourcemapStore() SourcemapStore {
	return &sourcemapStore{}
}

func (s *sourcemapStore) LoadSourcemap(path m.Path) (*m.SourceNode, error) {
	// #nosec G304 - sourcemap path is provided by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read sourcemap: %w", err)
	}

	return ParseSourcemap(data)
}

// ParseSourcemap decodes a sourcemap document.
func ParseSourcemap(data []byte) (*m.SourceNode, error) {
	var root m.SourceNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode sourcemap: %w", err)
	}

	if root.Name == "" {
		return nil, ErrEmptySourcemap
	}

	return &root, nil
}
