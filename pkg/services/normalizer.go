package services

import (
	"fmt"
	"strings"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/integrations"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/sources"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/utils"
)

// Normalizer turns raw bookmark leaves into validated records. The romanizer
// may be nil, in which case Japanese titles just don't get a romanized
// companion field.
type Normalizer struct {
	romanizer         integrations.Romanizer
	warnedNoRomanizer bool
}

func NewNormalizer(romanizer integrations.Romanizer) *Normalizer {
	return &Normalizer{romanizer: romanizer}
}

// Normalize validates and enriches one leaf. A non-nil error means the
// candidate is rejected outright (bad URL); enrichment failures only cost
// the affected field and are recorded on w.
func (n *Normalizer) Normalize(leaf sources.Leaf, w *Warnings) (*data.Manga, error) {
	title := utils.TrimQuotes(leaf.Title)
	if title == "" {
		return nil, fmt.Errorf("bookmark %q: no title", leaf.URI)
	}

	base, withChapter, chapter, err := data.URLAndChapter(leaf.URI)
	if err != nil {
		return nil, fmt.Errorf("bookmark %q: %w", title, err)
	}

	m := &data.Manga{
		Title:          title,
		URL:            base,
		URLWithChapter: withChapter,
		Chapter:        chapter,
		Tags:           extractTags(title),
	}

	if leaf.LastModified > 0 {
		m.LastUpdateMillis = utils.MicrosToMillis(leaf.LastModified)
		m.LastUpdate = utils.FormatEpochMillis(m.LastUpdateMillis)
	}

	if utils.IsJapanese(title) {
		if n.romanizer == nil {
			if !n.warnedNoRomanizer {
				w.Addf("romanizer unavailable, titles stay unromanized")
				n.warnedNoRomanizer = true
			}
		} else if romanized, err := n.romanizer.Romanize(title); err != nil {
			w.Addf("romanize %q: %v", title, err)
		} else {
			m.TitleRomanized = romanized
		}
	}

	reconcileTimestamps(m, w)
	m.Normalize()
	return m, nil
}

// reconcileTimestamps keeps the string/millis pair in agreement: a missing
// side is derived from the other, a disagreeing string is rebuilt from
// millis, and an unparsable string is dropped rather than failing the
// record.
func reconcileTimestamps(m *data.Manga, w *Warnings) {
	switch {
	case m.LastUpdate == "" && m.LastUpdateMillis == 0:
		// nothing to do
	case m.LastUpdate == "":
		m.LastUpdate = utils.FormatEpochMillis(m.LastUpdateMillis)
	case m.LastUpdateMillis == 0:
		millis, err := utils.ParseTimestamp(m.LastUpdate)
		if err != nil {
			w.Addf("record %q: unparsable last_update %q, dropping it", m.URL, m.LastUpdate)
			m.LastUpdate = ""
			return
		}
		m.LastUpdateMillis = millis
	default:
		if want := utils.FormatEpochMillis(m.LastUpdateMillis); m.LastUpdate != want {
			w.Addf("record %q: last_update %q disagrees with millis, using %q", m.URL, m.LastUpdate, want)
			m.LastUpdate = want
		}
	}
}

// extractTags pulls "#token" hashtags out of free text, e.g. a title like
// "何か #アニメ化 #完結".
func extractTags(texts ...string) []string {
	var tags []string
	for _, text := range texts {
		for _, field := range strings.Fields(text) {
			if strings.HasPrefix(field, "#") && len(field) > 1 {
				tags = append(tags, field)
			}
		}
	}
	return data.NormalizeTags(tags)
}
