package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "init.luau"), "return {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.luau"), "return 1\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.luau")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "init.luau")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files but skips vendored packages", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.luau")
		writeTestFile(t, child, "return 1\n")

		packagesDir := filepath.Join(root, "Packages")
		mustMkdir(t, packagesDir)
		vendored := filepath.Join(packagesDir, "dep.luau")
		writeTestFile(t, vendored, "return 2\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}

		if containsPath(visited, vendored) {
			t.Fatalf("Walk() visited %s inside Packages", vendored)
		}
	})
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "init.luau"), "return {}\n")
	writeTestFile(t, filepath.Join(root, "legacy.lua"), "return {}\n")
	writeTestFile(t, filepath.Join(root, "README.md"), "# docs\n")

	nested := filepath.Join(root, "server")
	mustMkdir(t, nested)
	writeTestFile(t, filepath.Join(nested, "main.luau"), "return 1\n")
	writeTestFile(t, filepath.Join(nested, "main.spec.luau"), "return 2\n")

	shortPaths := func(files []m.File) []string {
		out := make([]string, 0, len(files))
		for _, f := range files {
			out = append(out, string(f.ShortPath))
		}
		return out
	}

	t.Run("directory without recursion", func(t *testing.T) {
		files, err := adapter.Get(context.Background(), []m.Path{m.Path(root)})
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		got := shortPaths(files)
		want := []string{"init.luau", "legacy.lua"}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("Get() = %v, want %v", got, want)
		}
	})

	t.Run("recursive pattern with exclude", func(t *testing.T) {
		files, err := adapter.Get(context.Background(), []m.Path{m.Path(root + "/...")}, `\.spec\.luau$`)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		got := shortPaths(files)
		want := []string{"init.luau", "legacy.lua", "server/main.luau"}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("Get() = %v, want %v", got, want)
		}
	})

	t.Run("single file and duplicates", func(t *testing.T) {
		file := m.Path(filepath.Join(nested, "main.luau"))
		files, err := adapter.Get(context.Background(), []m.Path{file, file})
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		if len(files) != 1 || files[0].FullPath != file || files[0].ShortPath != "main.luau" {
			t.Fatalf("Get() = %+v, want only %s", files, file)
		}
	})

	t.Run("patterns sharing file names keep distinct short paths", func(t *testing.T) {
		other := filepath.Join(root, "client")
		mustMkdir(t, other)
		writeTestFile(t, filepath.Join(other, "main.luau"), "return 3\n")

		files, err := adapter.Get(context.Background(), []m.Path{m.Path(nested), m.Path(other)}, `\.spec\.luau$`)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		got := shortPaths(files)
		want := []string{"client/main.luau", "server/main.luau"}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("Get() = %v, want %v", got, want)
		}
	})

	t.Run("invalid exclude", func(t *testing.T) {
		if _, err := adapter.Get(context.Background(), []m.Path{m.Path(root)}, "("); err == nil {
			t.Fatalf("Get() expected error for invalid exclude")
		}
	})

	t.Run("missing path", func(t *testing.T) {
		if _, err := adapter.Get(context.Background(), []m.Path{m.Path(filepath.Join(root, "missing"))}); err == nil {
			t.Fatalf("Get() expected error for missing path")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := adapter.Get(ctx, []m.Path{m.Path(root)}); !errors.Is(err, context.Canceled) {
			t.Fatalf("Get() error = %v, want context.Canceled", err)
		}
	})
}

func TestCommonDir(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work")

	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"same", filepath.Join(base, "a"), filepath.Join(base, "a"), filepath.Join(base, "a")},
		{"siblings", filepath.Join(base, "a"), filepath.Join(base, "b"), base},
		{"nested", filepath.Join(base, "a"), filepath.Join(base, "a", "x"), filepath.Join(base, "a")},
		{"prefix is not a parent", filepath.Join(base, "ab"), filepath.Join(base, "a"), base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commonDir(tt.a, tt.b); got != tt.want {
				t.Fatalf("commonDir(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern   string
		root      string
		recursive bool
	}{
		{"./...", ".", true},
		{"...", ".", true},
		{"src/...", "src", true},
		{"/...", "/", true},
		{"src", "src", false},
		{"src/init.luau", "src/init.luau", false},
	}

	for _, tt := range tests {
		root, recursive := splitPattern(tt.pattern)
		if root != tt.root || recursive != tt.recursive {
			t.Errorf("splitPattern(%q) = (%q, %v), want (%q, %v)", tt.pattern, root, recursive, tt.root, tt.recursive)
		}
	}
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.luau")
	content := "local x = 1\n" + "return x\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.luau")
	content := []byte("return function(ctx) end\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if hash != expected {
		t.Fatalf("HashFile() = %s, want %s", hash, expected)
	}

	if _, err := adapter.HashFile(m.Path(filepath.Join(root, "missing.luau"))); err == nil {
		t.Fatalf("HashFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.luau")
	writeTestFile(t, path, "return nil\n")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_FindUp(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	projectDir := filepath.Join(root, "project")
	mustMkdir(t, projectDir)
	sourcemapPath := filepath.Join(projectDir, "sourcemap.json")
	writeTestFile(t, sourcemapPath, `{"name": "project"}`)

	subDir := filepath.Join(projectDir, "src", "server")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	t.Run("from a file", func(t *testing.T) {
		got, err := adapter.FindUp(m.Path(filepath.Join(subDir, "init.luau")), "sourcemap.json")
		if err != nil {
			t.Fatalf("FindUp() error = %v", err)
		}

		if got != m.Path(sourcemapPath) {
			t.Fatalf("FindUp() = %s, want %s", got, sourcemapPath)
		}
	})

	t.Run("from a directory", func(t *testing.T) {
		got, err := adapter.FindUp(m.Path(projectDir), "sourcemap.json")
		if err != nil {
			t.Fatalf("FindUp() error = %v", err)
		}

		if got != m.Path(sourcemapPath) {
			t.Fatalf("FindUp() = %s, want %s", got, sourcemapPath)
		}
	})

	t.Run("missing marker", func(t *testing.T) {
		_, err := adapter.FindUp(m.Path(subDir), "does-not-exist.json")
		if !errors.Is(err, ErrMarkerNotFound) {
			t.Fatalf("FindUp() error = %v, want ErrMarkerNotFound", err)
		}
	})
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	dst := filepath.Join(t.TempDir(), "out", "nested", "main.luau")
	if err := adapter.WriteFile(m.Path(dst), []byte("return 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("WriteFile() did not create %s: %v", dst, err)
	}

	if string(got) != "return 1\n" {
		t.Fatalf("WriteFile() wrote %q", got)
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/src/server/init.luau")

	rel, err := adapter.RelPath(base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("src", "server", "init.luau") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("src", "server", "init.luau"))
	}

	joined := adapter.JoinPath("/tmp", "project", "src", "init.luau")
	if string(joined) != filepath.Join("/tmp", "project", "src", "init.luau") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "src", "init.luau"))
	}
}

func TestIsSourceFile(t *testing.T) {
	for path, want := range map[string]bool{
		"init.luau":     true,
		"legacy.lua":    true,
		"UPPER.LUAU":    true,
		"config.json":   false,
		"noext":         false,
		"dir/file.luau": true,
	} {
		if got := IsSourceFile(path); got != want {
			t.Errorf("IsSourceFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
