package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

const (
	reportFileName = "reports.yaml"
	reportVersion  = 1
)

// ReportStore persists normalization reports in a directory.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.Report) error
	LoadReports(dir m.Path) ([]m.Report, error)
}

type reportDocument struct {
	Version int        `yaml:"version"`
	Reports []m.Report `yaml:"reports"`
}

type reportStore struct{}

// NewReportStore returns a ReportStore writing a single YAML document.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (s *reportStore) SaveReports(dir m.Path, reports []m.Report) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(reportDocument{Version: reportVersion, Reports: reports})
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	return nil
}

// LoadReports returns no reports and no error when the directory has none yet.
func (s *reportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	path := filepath.Join(string(dir), reportFileName)

	// #nosec G304 - path is built from the configured reports directory
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}

	var doc reportDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}

	if doc.Version != reportVersion {
		return nil, fmt.Errorf("unsupported reports version %d", doc.Version)
	}

	return doc.Reports, nil
}
