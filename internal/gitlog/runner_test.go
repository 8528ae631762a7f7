package gitlog

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty output",
			input:  "",
			expect: nil,
		},
		{
			name:   "only blank lines",
			input:  "\n\n  \n\t\n",
			expect: nil,
		},
		{
			name:  "trims and drops empties",
			input: "  .changeset/one.md  \n\n.changeset/two.md\n\t\n",
			expect: []string{
				".changeset/one.md",
				".changeset/two.md",
			},
		},
		{
			name:  "preserves order",
			input: "b\na\nc\n",
			expect: []string{
				"b", "a", "c",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, splitLines(tt.input))
		})
	}
}

func TestErrorTaxonomy(t *testing.T) {
	// The two failure classes must stay distinguishable via errors.As so
	// callers never mistake one for the other or for an empty result.
	var invocation *InvocationError
	var query *QueryError

	invErr := error(&InvocationError{Err: exec.ErrNotFound})
	assert.True(t, errors.As(invErr, &invocation))
	assert.False(t, errors.As(invErr, &query))
	assert.True(t, errors.Is(invErr, exec.ErrNotFound))
	assert.Contains(t, invErr.Error(), "failed to run git")

	qErr := error(&QueryError{
		Args:   []string{"log", "nosuchbranch"},
		Stderr: "fatal: ambiguous argument 'nosuchbranch'",
		Err:    errors.New("exit status 128"),
	})
	assert.True(t, errors.As(qErr, &query))
	assert.False(t, errors.As(qErr, &invocation))
	assert.Contains(t, qErr.Error(), "log nosuchbranch")
	assert.Contains(t, qErr.Error(), "ambiguous argument")
}

func TestRunnerBadRepoDir(t *testing.T) {
	runner := NewRunner(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := runner.ChangedPaths(context.Background(), "master", ".changeset")
	require.Error(t, err)

	// A missing working directory means the process never started.
	var invocation *InvocationError
	assert.True(t, errors.As(err, &invocation))
}

func TestRunnerAgainstRealRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available, skipping test")
	}

	dir := t.TempDir()
	branch := setupRepo(t, dir)
	ctx := context.Background()
	runner := NewRunner(dir)

	paths, err := runner.ChangedPaths(ctx, branch, ".changeset")
	require.NoError(t, err)
	// kept.md added; gone.md added and deleted; outside scope excluded.
	assert.ElementsMatch(t, []string{
		".changeset/kept.md",
		".changeset/gone.md",
		".changeset/gone.md",
	}, paths)

	adds, err := runner.AddEvents(ctx, branch, ".changeset/gone.md")
	require.NoError(t, err)
	require.Len(t, adds, 1)

	dels, err := runner.DeleteEvents(ctx, branch, ".changeset/gone.md")
	require.NoError(t, err)
	require.Len(t, dels, 1)

	// Never-deleted file has an empty, non-error delete history.
	dels, err = runner.DeleteEvents(ctx, branch, ".changeset/kept.md")
	require.NoError(t, err)
	assert.Empty(t, dels)

	// Unknown branch is a query failure, not an empty result.
	_, err = runner.ChangedPaths(ctx, "nosuchbranch", ".changeset")
	var query *QueryError
	require.Error(t, err)
	assert.True(t, errors.As(err, &query))
}

// setupRepo builds a throwaway repository with one surviving and one
// deleted changeset file, and returns the checked-out branch name.
func setupRepo(t *testing.T, dir string) string {
	t.Helper()

	git := func(args ...string) string {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
		return string(out)
	}

	write := func(rel, content string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	git("init")
	write(".changeset/kept.md", "kept\n")
	write(".changeset/gone.md", "gone\n")
	write("README.md", "outside scope\n")
	git("add", ".")
	git("commit", "-m", "add changesets")
	git("rm", ".changeset/gone.md")
	git("commit", "-m", "release: consume changeset")

	branch := splitLines(git("symbolic-ref", "--short", "HEAD"))
	require.Len(t, branch, 1)
	return branch[0]
}
