package report

import (
	"fmt"
	"io"

	"github.com/changeset-tools/cslife/internal/lifetime"
)

// PlainFormatter prints the classic line-oriented report: one line per
// entry with the base name, creation commit, removal commit (empty while
// the file is still present) and the human-readable age, followed by a
// summary line with the entry count and mean age.
type PlainFormatter struct{}

// Format implements Formatter.
func (PlainFormatter) Format(rep lifetime.Report, w io.Writer) error {
	for _, cs := range rep.Entries {
		_, err := fmt.Fprintf(w, "%s %s - %s  (%s)\n",
			cs.Name, cs.CommitAdded, cs.CommitRemoved, lifetime.FormatDuration(cs.Age))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Total: %d changesets (%s)\n",
		len(rep.Entries), lifetime.FormatDuration(rep.Mean))
	return err
}
