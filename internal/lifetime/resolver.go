package lifetime

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Querier is the slice of the history adapter the resolver consumes. Both
// methods return "HASH TIMESTAMP" lines most recent first; an empty list is
// a valid outcome distinct from an error.
type Querier interface {
	AddEvents(ctx context.Context, branch, path string) ([]string, error)
	DeleteEvents(ctx context.Context, branch, path string) ([]string, error)
}

// Clock supplies "now" for still-present files. Injectable so tests can fix
// the evaluation instant.
type Clock func() time.Time

// Resolver derives a lifetime for each candidate path from its add and
// delete history.
type Resolver struct {
	queries Querier
	branch  string
	now     Clock
}

// NewResolver creates a Resolver reading the given branch. A nil clock
// defaults to time.Now.
func NewResolver(queries Querier, branch string, now Clock) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{queries: queries, branch: branch, now: now}
}

// Resolve computes the lifetime of one path.
//
// Creation is the earliest add event. The adapter returns history most
// recent first, so the oldest add is the last line, not the first. A
// malformed creation timestamp is an error: age cannot be derived without
// it.
//
// Removal is the most recent delete event (first line), absent when the
// delete history is empty. A malformed deletion timestamp is downgraded to
// "no deletion record" because continued existence is still a reportable
// outcome.
func (r *Resolver) Resolve(ctx context.Context, path string) (ChangesetLifetime, error) {
	added, err := r.queries.AddEvents(ctx, r.branch, path)
	if err != nil {
		return ChangesetLifetime{}, err
	}
	if len(added) == 0 {
		// Candidate paths come from an add/delete enumeration, so an empty
		// add history means the caller broke the contract.
		return ChangesetLifetime{}, fmt.Errorf("no add history for %s", path)
	}

	created, err := parseEvent(added[len(added)-1])
	if err != nil {
		return ChangesetLifetime{}, fmt.Errorf("creation event for %s: %w", path, err)
	}

	var removed *HistoryEvent
	deleted, err := r.queries.DeleteEvents(ctx, r.branch, path)
	if err != nil {
		return ChangesetLifetime{}, err
	}
	if len(deleted) > 0 {
		if ev, perr := parseEvent(deleted[0]); perr == nil {
			removed = &ev
		}
	}

	cs := ChangesetLifetime{
		Name:        filepath.Base(path),
		CommitAdded: created.Commit,
		Created:     created.Time,
	}
	if removed != nil {
		cs.CommitRemoved = removed.Commit
		cs.Removed = removed.Time
		cs.Age = removed.Time.Sub(created.Time).Truncate(time.Minute)
	} else {
		cs.Age = r.now().Sub(created.Time).Truncate(time.Minute)
	}
	return cs, nil
}

// ResolveAll resolves every path, fanning out to at most jobs workers.
// Results are accumulated unordered; Aggregate sorts them, so the final
// report does not depend on jobs.
func ResolveAll(ctx context.Context, r *Resolver, paths []string, jobs int) ([]ChangesetLifetime, error) {
	if jobs < 1 {
		jobs = 1
	}

	var (
		mu  sync.Mutex
		out []ChangesetLifetime
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			cs, err := r.Resolve(ctx, path)
			if err != nil {
				return err
			}
			mu.Lock()
			out = append(out, cs)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseEvent parses one "HASH TIMESTAMP" line produced by a history query
// (git --format=%H %aI). The timestamp must be strict RFC 3339.
func parseEvent(line string) (HistoryEvent, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return HistoryEvent{}, fmt.Errorf("malformed history line %q", line)
	}
	ts, err := time.Parse(time.RFC3339, fields[1])
	if err != nil {
		return HistoryEvent{}, fmt.Errorf("parse timestamp %q: %w", fields[1], err)
	}
	return HistoryEvent{Commit: fields[0], Time: ts}, nil
}
