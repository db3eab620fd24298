package model

// ProjectRoot is the logical path returned when the ancestor is the project
// root itself rather than a literal path segment.
const ProjectRoot = "ProjectRoot"

// AncestorKind tags the outcome of an ancestor lookup.
type AncestorKind int

const (
	// AncestorNotFound means no ancestor with the requested name exists.
	AncestorNotFound AncestorKind = iota
	// AncestorFound means a literal path prefix was resolved.
	AncestorFound
	// AncestorProjectRoot means the ancestor is the project root node.
	AncestorProjectRoot
)

func (k AncestorKind) String() string {
	switch k {
	case AncestorFound:
		return "found"
	case AncestorProjectRoot:
		return "project-root"
	case AncestorNotFound:
		return "not-found"
	}

	return "unknown"
}

// AncestorResult is the result of an ancestor lookup. Path is only set when
// Kind is AncestorFound.
type AncestorResult struct {
	Kind AncestorKind
	Path string
}

// Ok reports whether the lookup produced a path or the project root.
func (r AncestorResult) Ok() bool {
	return r.Kind != AncestorNotFound
}

// String renders the result using the ProjectRoot sentinel, or the empty
// string when nothing was found.
func (r AncestorResult) String() string {
	switch r.Kind {
	case AncestorFound:
		return r.Path
	case AncestorProjectRoot:
		return ProjectRoot
	case AncestorNotFound:
		return ""
	}

	return ""
}
