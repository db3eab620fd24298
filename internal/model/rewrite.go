// Package model defines the data structures shared by the arlsp layers.
package model

// RewriteKind represents the category of a source rewrite.
type RewriteKind string

const (
	// RewritePragma is the removal of a leading @pragma line.
	RewritePragma RewriteKind = "pragma"
	// RewriteFunction renames an anonymous function to the entrypoint name.
	RewriteFunction RewriteKind = "function"
	// RewriteRequire replaces `require "@antiraid/x"`.
	RewriteRequire RewriteKind = "require"
	// RewriteRequireCall replaces `require("@antiraid/x")`.
	RewriteRequireCall RewriteKind = "require_call"
)

// RewriteKinds lists every kind in the order the normalizer applies them.
var RewriteKinds = []RewriteKind{
	RewritePragma,
	RewriteFunction,
	RewriteRequire,
	RewriteRequireCall,
}

// NormalizeStats counts the rewrites applied to a single source text.
type NormalizeStats struct {
	PragmaStripped bool     `yaml:"pragma_stripped"`
	Functions      int      `yaml:"functions"`
	Requires       int      `yaml:"requires"`
	RequireCalls   int      `yaml:"require_calls"`
	Modules        []string `yaml:"modules,omitempty"`
}

// Count returns the number of rewrites of the given kind.
func (s NormalizeStats) Count(kind RewriteKind) int {
	switch kind {
	case RewritePragma:
		if s.PragmaStripped {
			return 1
		}

		return 0
	case RewriteFunction:
		return s.Functions
	case RewriteRequire:
		return s.Requires
	case RewriteRequireCall:
		return s.RequireCalls
	}

	return 0
}

// Total returns the number of rewrites of every kind.
func (s NormalizeStats) Total() int {
	total := 0
	for _, kind := range RewriteKinds {
		total += s.Count(kind)
	}

	return total
}
