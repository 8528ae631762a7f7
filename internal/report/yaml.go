package report

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/changeset-tools/cslife/internal/lifetime"
)

// YAMLFormatter emits the report as a YAML document for scripting. Ages are
// duplicated as whole minutes so consumers never re-parse the human form.
type YAMLFormatter struct{}

type yamlEntry struct {
	Name          string `yaml:"name"`
	CommitAdded   string `yaml:"commit_added"`
	CommitRemoved string `yaml:"commit_removed,omitempty"`
	Created       string `yaml:"created"`
	Removed       string `yaml:"removed,omitempty"`
	Age           string `yaml:"age"`
	AgeMinutes    int64  `yaml:"age_minutes"`
}

type yamlReport struct {
	Changesets  []yamlEntry `yaml:"changesets"`
	Count       int         `yaml:"count"`
	MeanAge     string      `yaml:"mean_age"`
	MeanMinutes int64       `yaml:"mean_minutes"`
}

// Format implements Formatter.
func (YAMLFormatter) Format(rep lifetime.Report, w io.Writer) error {
	doc := yamlReport{
		Changesets:  make([]yamlEntry, 0, len(rep.Entries)),
		Count:       len(rep.Entries),
		MeanAge:     lifetime.FormatDuration(rep.Mean),
		MeanMinutes: int64(rep.Mean / time.Minute),
	}

	for _, cs := range rep.Entries {
		entry := yamlEntry{
			Name:          cs.Name,
			CommitAdded:   cs.CommitAdded,
			CommitRemoved: cs.CommitRemoved,
			Created:       cs.Created.Format(time.RFC3339),
			Age:           lifetime.FormatDuration(cs.Age),
			AgeMinutes:    int64(cs.Age / time.Minute),
		}
		if !cs.Removed.IsZero() {
			entry.Removed = cs.Removed.Format(time.RFC3339)
		}
		doc.Changesets = append(doc.Changesets, entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
