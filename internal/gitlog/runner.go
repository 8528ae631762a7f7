package gitlog

import (
	"bufio"
	"context"
	"os/exec"
	"strings"
)

// eventFormat makes git print one "HASH TIMESTAMP" line per commit, with
// the author timestamp in strict ISO 8601 (%aI).
const eventFormat = "--format=%H %aI"

// Runner issues read-only git log queries against one repository. It never
// mutates repository state; every query shells out to git and returns the
// output as trimmed, non-empty lines in git's most-recent-first order.
type Runner struct {
	repoPath string
}

// NewRunner creates a Runner for the repository at repoPath.
func NewRunner(repoPath string) *Runner {
	return &Runner{repoPath: repoPath}
}

// ChangedPaths returns the path of every add or delete event under scope in
// the branch's history, most recent first. A path that was added and later
// deleted appears once per event; callers deduplicate.
func (r *Runner) ChangedPaths(ctx context.Context, branch, scope string) ([]string, error) {
	// --name-only with an empty pretty format leaves only path lines.
	return r.run(ctx, "log", branch, "--diff-filter=AD", "--name-only", "--pretty=format:", "--", scope)
}

// AddEvents returns the add history for one path as "HASH TIMESTAMP"
// lines, most recent first, following renames. An empty result means the
// path has no add events under this branch.
func (r *Runner) AddEvents(ctx context.Context, branch, path string) ([]string, error) {
	return r.run(ctx, "log", branch, "--diff-filter=A", "--follow", eventFormat, "--", path)
}

// DeleteEvents returns the delete history for one path, same shape as
// AddEvents. An empty result means the file was never deleted under this
// branch (it may still be present at HEAD).
func (r *Runner) DeleteEvents(ctx context.Context, branch, path string) ([]string, error) {
	return r.run(ctx, "log", branch, "--diff-filter=D", "--follow", eventFormat, "--", path)
}

// run executes git in the repository directory. A process that cannot be
// started yields an InvocationError; a non-zero exit yields a QueryError
// carrying git's stderr. An empty line list is a valid, non-error outcome.
func (r *Runner) run(ctx context.Context, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.repoPath

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, &QueryError{
				Args:   args,
				Stderr: strings.TrimSpace(string(exitErr.Stderr)),
				Err:    err,
			}
		}
		return nil, &InvocationError{Err: err}
	}

	return splitLines(string(output)), nil
}

// splitLines normalizes raw git output: each line trimmed, empty lines
// dropped, original order preserved.
func splitLines(output string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
