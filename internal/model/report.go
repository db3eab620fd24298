package model

// Report is the persisted outcome of normalizing one file.
type Report struct {
	Path   Path           `yaml:"path"`
	Hash   string         `yaml:"hash"`
	Output Path           `yaml:"output,omitempty"`
	Stats  NormalizeStats `yaml:"stats"`
	Error  string         `yaml:"error,omitempty"`
}

// Changed reports whether normalization rewrote anything beyond the trailer.
func (r Report) Changed() bool {
	return r.Stats.Total() > 0
}
