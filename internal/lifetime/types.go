package lifetime

import (
	"errors"
	"time"
)

// HistoryEvent is one (commit, timestamp) record parsed from a history
// query line. It only exists inside the resolver's computation for a path.
type HistoryEvent struct {
	Commit string
	Time   time.Time
}

// ChangesetLifetime describes how long one changeset file existed under a
// branch's history. Constructed once per qualifying path and never mutated.
type ChangesetLifetime struct {
	// Name is the file's base name.
	Name string
	// CommitAdded introduced the file (earliest add event).
	CommitAdded string
	// CommitRemoved deleted the file (most recent delete event). Empty
	// while the file is still present at HEAD.
	CommitRemoved string
	// Created and Removed are the event timestamps. Removed is the zero
	// time while the file is still present.
	Created time.Time
	Removed time.Time
	// Age is the lifetime truncated to whole minutes. For still-present
	// files it is measured against "now" at resolution time, so repeated
	// runs report different ages.
	Age time.Duration
}

// Window is the observation window plus the minimum-age threshold,
// supplied once per run and immutable for its duration. Semantics are
// [Start, End): entries created after End or removed before Start are
// irrelevant to the report.
type Window struct {
	Start  time.Time
	End    time.Time
	MinAge time.Duration
}

// Validate rejects windows whose end is not strictly after their start.
func (w Window) Validate() error {
	if !w.End.After(w.Start) {
		return errors.New("end must be after start")
	}
	return nil
}
