package domain

import (
	"path/filepath"

	"github.com/Anti-Raid/luau-lsp/internal/adapter"
	"github.com/Anti-Raid/luau-lsp/pkg"
)

// HomeDirectory returns HOME, falling back to USERPROFILE.
func HomeDirectory(env adapter.EnvAdapter) (string, bool) {
	if home, ok := env.LookupEnv("HOME"); ok {
		return home, true
	}

	if profile, ok := env.LookupEnv("USERPROFILE"); ok {
		return profile, true
	}

	return "", false
}

// ResolvePath expands a leading "~/" to the home directory. The rest of the
// path is appended verbatim, without cleaning. Paths without the prefix, or any
// path when no home directory is known, are returned as is.
func ResolvePath(path string, env adapter.EnvAdapter) string {
	if !pkg.StartsWith(filepath.ToSlash(path), "~/") {
		return path
	}

	home, ok := HomeDirectory(env)
	if !ok {
		return path
	}

	if home == "" || pkg.EndsWith(home, "/") || pkg.EndsWith(home, string(filepath.Separator)) {
		return home + path[2:]
	}

	return home + string(filepath.Separator) + path[2:]
}
