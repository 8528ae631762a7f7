package lifetime

import (
	"sort"
	"time"
)

// Report is the final ordered report plus its summary statistic.
type Report struct {
	Entries []ChangesetLifetime
	// Mean is the arithmetic mean age across Entries, truncated to whole
	// minutes. Defined as zero when there are no entries.
	Mean time.Duration
}

// Aggregate applies the window filters to the candidate set, sorts the
// survivors by age descending and computes the mean age.
//
// Filters, in order: created after the window end; removed before the
// window start; zero (minute-truncated) age; age below the minimum-age
// threshold. The threshold is exclusive: an age exactly equal to MinAge is
// excluded.
func Aggregate(window Window, candidates []ChangesetLifetime) Report {
	var entries []ChangesetLifetime
	for _, cs := range candidates {
		if cs.Created.After(window.End) {
			continue
		}
		if !cs.Removed.IsZero() && cs.Removed.Before(window.Start) {
			continue
		}
		if cs.Age == 0 {
			continue
		}
		if cs.Age <= window.MinAge {
			continue
		}
		entries = append(entries, cs)
	}

	// Ties break on name so repeated runs print identically.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Age != entries[j].Age {
			return entries[i].Age > entries[j].Age
		}
		return entries[i].Name < entries[j].Name
	})

	var sum time.Duration
	for _, e := range entries {
		sum += e.Age
	}
	var mean time.Duration
	if len(entries) > 0 {
		mean = (sum / time.Duration(len(entries))).Truncate(time.Minute)
	}

	return Report{Entries: entries, Mean: mean}
}
