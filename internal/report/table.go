package report

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/changeset-tools/cslife/internal/lifetime"
)

// TableFormatter renders the report as an aligned table with abbreviated
// commit hashes and relative creation times, for interactive use.
type TableFormatter struct{}

// Format implements Formatter.
func (TableFormatter) Format(rep lifetime.Report, w io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Changeset", "Added", "Removed", "Created", "Age"})

	for _, cs := range rep.Entries {
		removed := "-"
		if cs.CommitRemoved != "" {
			removed = shortHash(cs.CommitRemoved)
		}
		t.AppendRow(table.Row{
			cs.Name,
			shortHash(cs.CommitAdded),
			removed,
			humanize.Time(cs.Created),
			lifetime.FormatDuration(cs.Age),
		})
	}
	t.Render()

	summary := color.New(color.Bold)
	_, err := summary.Fprintf(w, "Total: %d changesets (%s)\n",
		len(rep.Entries), lifetime.FormatDuration(rep.Mean))
	return err
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
