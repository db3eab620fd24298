package model

// Path represents a file system path.
type Path string

// File represents a source code file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is a file together with its raw and normalized text.
type Source struct {
	Origin     *File
	Raw        string
	Normalized string
	Stats      NormalizeStats
}

// SourceNode is a named node of the platform's instance tree, as read from a
// sourcemap. The tree is owned by whoever loaded it.
type SourceNode struct {
	Name      string        `yaml:"name"`
	ClassName string        `yaml:"className,omitempty"`
	FilePaths []string      `yaml:"filePaths,omitempty"`
	Children  []*SourceNode `yaml:"children,omitempty"`
}
