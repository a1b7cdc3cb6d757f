package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
)

// Store is the slice of the repository the reconciler needs.
type Store interface {
	ListMangas() ([]*data.Manga, error)
	ApplyBatch(records []*data.Manga) error
}

type Action int

const (
	ActionNoop Action = iota
	ActionInsert
	ActionUpdate
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionUpdate:
		return "update"
	default:
		return "noop"
	}
}

// PlanEntry pairs one merged record with the action that reconciles the
// store to it. Existing is nil for inserts.
type PlanEntry struct {
	Action   Action
	Record   *data.Manga
	Existing *data.Manga
}

// Plan is the full reconciliation outcome for one batch of candidates.
type Plan struct {
	Entries []PlanEntry
}

func (p *Plan) Count(a Action) int {
	n := 0
	for _, e := range p.Entries {
		if e.Action == a {
			n++
		}
	}
	return n
}

// BuildPlan matches candidates against existing records by normalized URL.
// Candidates sharing a URL within the same batch collapse into one entry,
// merged in input order. Candidates with an unusable URL are skipped with a
// warning.
func BuildPlan(existing, candidates []*data.Manga, w *Warnings) *Plan {
	byURL := make(map[string]*data.Manga, len(existing))
	for _, m := range existing {
		key, err := data.NormalizeURL(m.URL)
		if err != nil {
			w.Addf("stored record id=%d: %v", m.ID, err)
			continue
		}
		byURL[key] = m
	}

	plan := &Plan{}
	planned := make(map[string]int, len(candidates))

	for _, cand := range candidates {
		key, err := data.NormalizeURL(cand.URL)
		if err != nil {
			w.Addf("candidate %q: %v", cand.Title, err)
			continue
		}

		if i, ok := planned[key]; ok {
			plan.Entries[i].Record = Merge(plan.Entries[i].Record, cand)
			continue
		}

		if old, ok := byURL[key]; ok {
			merged := Merge(old, cand)
			action := ActionUpdate
			if merged.Equal(old) {
				action = ActionNoop
			}
			planned[key] = len(plan.Entries)
			plan.Entries = append(plan.Entries, PlanEntry{Action: action, Record: merged, Existing: old})
			continue
		}

		planned[key] = len(plan.Entries)
		plan.Entries = append(plan.Entries, PlanEntry{Action: ActionInsert, Record: cand.Clone()})
	}

	// in-run merging can turn an update back into a noop, or vice versa
	for i, e := range plan.Entries {
		if e.Existing == nil {
			continue
		}
		if e.Record.Equal(e.Existing) {
			plan.Entries[i].Action = ActionNoop
		} else {
			plan.Entries[i].Action = ActionUpdate
		}
	}
	return plan
}

// Merge folds cand into old without losing data: a filled field on cand
// wins, an empty one keeps old's value, and tags are unioned. The newer
// timestamp pair wins. old's ID always survives.
func Merge(old, cand *data.Manga) *data.Manga {
	out := old.Clone()

	out.Title = pick(cand.Title, old.Title)
	out.TitleRomanized = pick(cand.TitleRomanized, old.TitleRomanized)
	out.URLWithChapter = pick(cand.URLWithChapter, old.URLWithChapter)
	out.Chapter = pick(cand.Chapter, old.Chapter)
	out.Notes = pick(cand.Notes, old.Notes)
	out.MyAnimeList = pick(cand.MyAnimeList, old.MyAnimeList)

	if cand.LastUpdateMillis > old.LastUpdateMillis {
		out.LastUpdate = cand.LastUpdate
		out.LastUpdateMillis = cand.LastUpdateMillis
	}

	out.Tags = data.NormalizeTags(append(append([]string(nil), old.Tags...), cand.Tags...))
	return out
}

func pick(cand, old string) string {
	if strings.TrimSpace(cand) != "" {
		return cand
	}
	return old
}

// Apply writes the plan's inserts and updates to the store in one
// transaction. Noops never touch the store.
func Apply(store Store, plan *Plan) error {
	var records []*data.Manga
	for _, e := range plan.Entries {
		if e.Action == ActionInsert || e.Action == ActionUpdate {
			records = append(records, e.Record)
		}
	}
	if len(records) == 0 {
		return nil
	}
	if err := store.ApplyBatch(records); err != nil {
		return fmt.Errorf("apply plan: %w", err)
	}
	return nil
}

// MergedSet is the post-reconciliation view: every existing record, with
// planned records replacing or joining them, sorted by URL. It is what the
// snapshot writer sees whether or not a store is attached.
func MergedSet(existing []*data.Manga, plan *Plan) []*data.Manga {
	byURL := make(map[string]*data.Manga, len(existing)+len(plan.Entries))
	for _, m := range existing {
		byURL[m.URL] = m
	}
	for _, e := range plan.Entries {
		if e.Existing != nil {
			delete(byURL, e.Existing.URL)
		}
		byURL[e.Record.URL] = e.Record
	}

	out := make([]*data.Manga, 0, len(byURL))
	for _, m := range byURL {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out
}
