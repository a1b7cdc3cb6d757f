package services

import (
	"fmt"
	"os"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/integrations"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/sources"
)

// RunOptions selects the inputs and outputs of one conversion run. StorePath
// and DiffPath are optional; without a store the run is a pure
// bookmarks-to-snapshot conversion.
type RunOptions struct {
	InputPath  string
	OutputPath string
	StorePath  string
	DiffPath   string
}

// RunResult summarizes what one run did.
type RunResult struct {
	Parsed    int // leaves found in the bookmark export
	Skipped   int // leaves rejected during normalization
	Inserted  int
	Updated   int
	Unchanged int
	Written   int // records in the snapshot

	// vs the prior snapshot, when one was given
	DiffNew       int
	DiffChanged   int
	DiffUnchanged int

	Warnings []string
}

// Converter runs the bookmark export through normalization, store
// reconciliation, and snapshot output.
type Converter struct {
	normalizer *Normalizer
}

func NewConverter(romanizer integrations.Romanizer) *Converter {
	return &Converter{normalizer: NewNormalizer(romanizer)}
}

// Run executes one conversion. A returned error means the run produced
// nothing usable (unreadable export, broken store, unwritable snapshot);
// per-record trouble is downgraded into result warnings instead.
func (c *Converter) Run(opts RunOptions) (*RunResult, error) {
	result := &RunResult{}
	var w Warnings

	candidates, err := c.loadCandidates(opts.InputPath, result, &w)
	if err != nil {
		return nil, err
	}

	var existing []*data.Manga
	var repo *data.Repository
	if opts.StorePath != "" {
		db, err := data.InitSQLite(opts.StorePath)
		if err != nil {
			return nil, err
		}
		repo = data.NewRepository(db)
		defer repo.Close()

		existing, err = repo.ListMangas()
		if err != nil {
			return nil, err
		}
	}

	plan := BuildPlan(existing, candidates, &w)
	result.Inserted = plan.Count(ActionInsert)
	result.Updated = plan.Count(ActionUpdate)
	result.Unchanged = plan.Count(ActionNoop)

	if repo != nil {
		if err := Apply(repo, plan); err != nil {
			return nil, err
		}
	}

	snapshot := MergedSet(existing, plan)
	result.Written = len(snapshot)
	if err := integrations.WriteSnapshotFile(opts.OutputPath, snapshot); err != nil {
		return nil, err
	}

	if opts.DiffPath != "" {
		c.diffAgainstPrior(opts.DiffPath, snapshot, result, &w)
	}

	result.Warnings = w.Messages()
	return result, nil
}

func (c *Converter) loadCandidates(path string, result *RunResult, w *Warnings) ([]*data.Manga, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bookmark export: %w", err)
	}
	defer f.Close()

	root, err := sources.ParseRoot(f)
	if err != nil {
		return nil, err
	}

	leaves, parseWarnings := root.Leaves()
	w.Append(parseWarnings...)
	result.Parsed = len(leaves)

	var candidates []*data.Manga
	for _, leaf := range leaves {
		m, err := c.normalizer.Normalize(leaf, w)
		if err != nil {
			w.Addf("skipping: %v", err)
			result.Skipped++
			continue
		}
		candidates = append(candidates, m)
	}
	return candidates, nil
}

// diffAgainstPrior compares the snapshot against an earlier one, by URL.
// Purely informational; a bad prior file is only a warning.
func (c *Converter) diffAgainstPrior(path string, snapshot []*data.Manga, result *RunResult, w *Warnings) {
	prior, err := integrations.ReadSnapshotFile(path)
	if err != nil {
		w.Addf("prior snapshot %q: %v", path, err)
		return
	}

	byURL := make(map[string]*data.Manga, len(prior))
	for _, m := range prior {
		if key, err := data.NormalizeURL(m.URL); err == nil {
			byURL[key] = m
		}
	}
	for _, m := range snapshot {
		key, err := data.NormalizeURL(m.URL)
		if err != nil {
			continue
		}
		old, ok := byURL[key]
		switch {
		case !ok:
			result.DiffNew++
		case m.Equal(old):
			result.DiffUnchanged++
		default:
			result.DiffChanged++
		}
	}
}
