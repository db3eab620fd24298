package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Anti-Raid/luau-lsp/internal/domain"
	domainmocks "github.com/Anti-Raid/luau-lsp/internal/domain/mocks"
	m "github.com/Anti-Raid/luau-lsp/internal/model"
)

func newNormalizeTestCmd(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()
	chdirTemp(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newRootCmd()
	cmd.AddCommand(newNormalizeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow, func(args ...string) error {
		cmd.SetArgs(append([]string{"normalize"}, args...))
		return cmd.Execute()
	}
}

func TestNormalizeCmd_Defaults(t *testing.T) {
	mockWorkflow, run := newNormalizeTestCmd(t)

	mockWorkflow.On("Normalize", mock.Anything, mock.MatchedBy(func(args domain.NormalizeArgs) bool {
		return len(args.Paths) == 0 &&
			args.Output == m.Path(defaultOutputDir) &&
			!args.Write && !args.Diff &&
			args.Threads == defaultRunParallel
	})).Return(nil)

	require.NoError(t, run())
}

func TestNormalizeCmd_Flags(t *testing.T) {
	mockWorkflow, run := newNormalizeTestCmd(t)

	mockWorkflow.On("Normalize", mock.Anything, mock.MatchedBy(func(args domain.NormalizeArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("./templates/...") &&
			args.Output == m.Path("out") &&
			args.Write && !args.Diff &&
			args.Threads == 2
	})).Return(nil)

	require.NoError(t, run("./templates/...", "--write", "-p", "2", "-o", "out"))
}

func TestNormalizeCmd_Diff(t *testing.T) {
	mockWorkflow, run := newNormalizeTestCmd(t)

	mockWorkflow.On("Normalize", mock.Anything, mock.MatchedBy(func(args domain.NormalizeArgs) bool {
		return args.Diff && !args.Write
	})).Return(nil)

	require.NoError(t, run("--diff"))
}

func TestNormalizeCmd_WriteAndDiffAreExclusive(t *testing.T) {
	_, run := newNormalizeTestCmd(t)

	require.Error(t, run("--diff", "--write"))
}
