// Package adapter contains infrastructure adapters for the arlsp CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
	"github.com/Anti-Raid/luau-lsp/pkg"
)

// SourceExtensions are the file extensions treated as Luau sources.
var SourceExtensions = []string{".luau", ".lua"}

// ErrMarkerNotFound is returned by FindUp when no ancestor directory contains
// the requested file.
var ErrMarkerNotFound = errors.New("marker file not found")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get expands Go-style path patterns (dir, dir/..., file) into the Luau
	// source files they denote, skipping paths matching any exclude regex.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.File, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindUp searches startPath and its parents for a file called name and
	// returns the full path of the first one found.
	FindUp(startPath m.Path, name string) (m.Path, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// IsSourceFile reports whether path has a Luau source extension.
func IsSourceFile(path string) bool {
	ext := pkg.ToLower(filepath.Ext(path))
	for _, candidate := range SourceExtensions {
		if ext == candidate {
			return true
		}
	}

	return false
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || skipDir(info.Name()) {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

func skipDir(name string) bool {
	return name == ".git" || name == "node_modules" || name == "Packages"
}

// Get implements SourceFSAdapter. No paths means the current directory,
// recursively.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.File, error) {
	excludeRegexes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	base, err := patternsBase(paths)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var files []m.File

	for _, pattern := range paths {
		root, recursive := splitPattern(string(pattern))

		err := a.Walk(m.Path(root), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if info.IsDir() || !IsSourceFile(path) || isExcluded(path, excludeRegexes) {
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			if _, dup := seen[abs]; dup {
				return nil
			}

			seen[abs] = struct{}{}
			files = append(files, m.File{FullPath: m.Path(path), ShortPath: shortPath(base, abs)})

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", pattern, err)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].FullPath < files[j].FullPath
	})

	slog.Debug("collected sources", "patterns", len(paths), "count", len(files))

	return files, nil
}

// splitPattern turns "dir/..." into ("dir", true) and anything else into
// (path, false).
func splitPattern(pattern string) (string, bool) {
	if pattern == "..." {
		return ".", true
	}

	if pkg.EndsWith(pattern, "/...") {
		root := pattern[:len(pattern)-len("/...")]
		if root == "" {
			root = "/"
		}

		return root, true
	}

	return pattern, false
}

// patternsBase returns the deepest absolute directory containing the root of
// every pattern. Short paths are relative to it, so files from different
// patterns never share a short path.
func patternsBase(paths []m.Path) (string, error) {
	var base string

	for i, pattern := range paths {
		root, _ := splitPattern(string(pattern))

		dir, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("walk %s: %w", pattern, err)
		}

		info, err := os.Stat(dir)
		if err != nil {
			return "", fmt.Errorf("walk %s: %w", pattern, err)
		}

		if !info.IsDir() {
			dir = filepath.Dir(dir)
		}

		if i == 0 {
			base = dir
			continue
		}

		base = commonDir(base, dir)
	}

	return base, nil
}

func commonDir(a, b string) string {
	for !isWithin(a, b) {
		parent := filepath.Dir(a)
		if parent == a {
			return a
		}

		a = parent
	}

	return a
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel != ".." && !pkg.StartsWith(rel, ".."+string(filepath.Separator))
}

func shortPath(root, path string) m.Path {
	if rel, err := filepath.Rel(root, path); err == nil && rel != "." {
		return m.Path(filepath.ToSlash(rel))
	}

	return m.Path(filepath.ToSlash(filepath.Base(path)))
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	regexes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		regexes = append(regexes, re)
	}

	return regexes, nil
}

func isExcluded(path string, regexes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)
	for _, re := range regexes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user sources is the point of the tool
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindUp searches startPath (a file or directory) and every parent directory
// for name.
func (a *LocalSourceFSAdapter) FindUp(startPath m.Path, name string) (m.Path, error) {
	dir := string(startPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return m.Path(candidate), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in any parent directory of %s: %w", name, startPath, ErrMarkerNotFound)
		}

		dir = parent
	}
}

// WriteFile writes content to a file with the given permissions, creating the
// parent directory when needed.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
