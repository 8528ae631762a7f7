package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/changeset-tools/cslife/internal/gitlog"
	"github.com/changeset-tools/cslife/internal/lifetime"
	"github.com/changeset-tools/cslife/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute changeset lifetimes within an observation window",
	Long: `Enumerates every changeset file ever added or removed under the scope
directory, resolves each file's creation and (optional) removal commit,
and prints the surviving entries sorted by age descending plus a mean-age
summary.

A file still present at HEAD is aged against the current time, so two runs
at different moments report different ages for it.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("dir", "d", ".", "repository location")
	reportCmd.Flags().String("branch", "", `branch to read history from (default "master")`)
	reportCmd.Flags().String("start", "", "observation window start (RFC 3339 or YYYY-MM-DD)")
	reportCmd.Flags().String("end", "", "observation window end, must be after start")
	reportCmd.Flags().String("days", "", `minimum age threshold, e.g. "30days"`)
	reportCmd.Flags().String("scope", "", `path prefix to scan (default ".changeset")`)
	reportCmd.Flags().Int("jobs", 0, "parallel history resolutions (default 1)")
	reportCmd.Flags().String("format", "", "output format: plain, table or yaml")

	reportCmd.MarkFlagRequired("start")
	reportCmd.MarkFlagRequired("end")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	dir, _ := cmd.Flags().GetString("dir")
	branch := stringFlagOr(cmd, "branch", cfg.Branch)
	scope := stringFlagOr(cmd, "scope", cfg.Scope)
	days := stringFlagOr(cmd, "days", cfg.Days)
	format := stringFlagOr(cmd, "format", cfg.Format)
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs < 1 {
		jobs = cfg.Jobs
	}

	startStr, _ := cmd.Flags().GetString("start")
	start, err := lifetime.ParseTime(startStr)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	endStr, _ := cmd.Flags().GetString("end")
	end, err := lifetime.ParseTime(endStr)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	minAge, err := lifetime.ParseDuration(days)
	if err != nil {
		return fmt.Errorf("invalid --days: %w", err)
	}

	window := lifetime.Window{Start: start, End: end, MinAge: minAge}
	if err := window.Validate(); err != nil {
		return err
	}

	formatter, err := report.NewFormatter(report.Format(format))
	if err != nil {
		return err
	}

	log := logger.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"branch": branch,
		"scope":  scope,
	})

	runner := gitlog.NewRunner(dir)

	log.Debug("enumerating changed paths")
	raw, err := runner.ChangedPaths(ctx, branch, scope)
	if err != nil {
		return err
	}
	paths := dedupe(raw)
	log.WithField("paths", len(paths)).Debug("resolving lifetimes")

	resolver := lifetime.NewResolver(runner, branch, nil)
	candidates, err := lifetime.ResolveAll(ctx, resolver, paths, jobs)
	if err != nil {
		return err
	}

	rep := lifetime.Aggregate(window, candidates)
	log.WithField("entries", len(rep.Entries)).Debug("report ready")

	return formatter.Format(rep, os.Stdout)
}

// stringFlagOr returns the flag value when set, otherwise the configured
// fallback.
func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}

// dedupe collapses the enumeration to distinct paths, preserving first-seen
// order.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
