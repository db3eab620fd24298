package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdirTemp switches into a fresh temp dir for the duration of the test. Log
// output is redirected there as well.
func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })
	t.Setenv("ARLSP_LOG_FILENAME", filepath.Join(tempDir, defaultLogFilename))

	return tempDir
}

func writeTestFile(path, contents string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(contents), 0o644)
}
