package data

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/utils"
)

// Manga is one tracked bookmark entry. Optional fields are normalized to
// their zero value when absent; ID is 0 until the store assigns one.
type Manga struct {
	ID               int64
	Title            string
	TitleRomanized   string // set only when Title is in Japanese
	URL              string // series page, dedup key across runs
	URLWithChapter   string // last-visited deep link, may equal URL
	Chapter          string // e.g. "12.1"
	LastUpdate       string // "2006-01-02T15:04:05", UTC
	LastUpdateMillis int64  // epoch millis mirror of LastUpdate
	Notes            string
	Tags             []string
	MyAnimeList      string
}

// Normalize trims quotes/whitespace on every text field and dedups tags.
func (m *Manga) Normalize() {
	m.Title = utils.TrimQuotes(m.Title)
	m.TitleRomanized = utils.TrimQuotes(m.TitleRomanized)
	m.URL = utils.TrimQuotes(m.URL)
	m.URLWithChapter = utils.TrimQuotes(m.URLWithChapter)
	m.Chapter = utils.TrimQuotes(m.Chapter)
	m.LastUpdate = utils.TrimQuotes(m.LastUpdate)
	m.Notes = utils.TrimQuotes(m.Notes)
	m.MyAnimeList = utils.TrimQuotes(m.MyAnimeList)
	m.Tags = NormalizeTags(m.Tags)
}

// Validate checks the required-field invariants.
func (m *Manga) Validate() error {
	if utils.TrimQuotes(m.Title) == "" {
		return fmt.Errorf("title is empty")
	}
	if _, err := NormalizeURL(m.URL); err != nil {
		return err
	}
	return nil
}

// Equal compares all fields, tags in order.
func (m *Manga) Equal(o *Manga) bool {
	if o == nil {
		return false
	}
	if m.ID != o.ID ||
		m.Title != o.Title ||
		m.TitleRomanized != o.TitleRomanized ||
		m.URL != o.URL ||
		m.URLWithChapter != o.URLWithChapter ||
		m.Chapter != o.Chapter ||
		m.LastUpdate != o.LastUpdate ||
		m.LastUpdateMillis != o.LastUpdateMillis ||
		m.Notes != o.Notes ||
		m.MyAnimeList != o.MyAnimeList {
		return false
	}
	if len(m.Tags) != len(o.Tags) {
		return false
	}
	for i := range m.Tags {
		if m.Tags[i] != o.Tags[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (m *Manga) Clone() *Manga {
	c := *m
	c.Tags = append([]string(nil), m.Tags...)
	return &c
}

// NormalizeTags trims each tag, drops empties, and dedups case-insensitively
// while keeping the first-seen casing and order.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = utils.TrimQuotes(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

// tagSeparator joins tags in CSV cells and the sqlite tags column. The
// sanitizer never lets a ";" survive inside a tag.
const tagSeparator = ";"

// JoinTags renders the tag list as a single cell value.
func JoinTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}

// SplitTags parses a joined cell value back into a normalized tag list.
func SplitTags(s string) []string {
	if utils.TrimQuotes(s) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(s, tagSeparator))
}

// NormalizeURL validates that raw is an absolute URL and returns the
// identity form used for dedup: scheme and host lowercased, path untouched.
func NormalizeURL(raw string) (string, error) {
	raw = utils.TrimQuotes(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid url %q: not absolute", raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String(), nil
}

// URLAndChapter splits a bookmarked link into the series base URL, the link
// as bookmarked, and a chapter label.
//
//	https://a.test/mymanga-chapter-12-1/ -> https://a.test/mymanga/, https://a.test/mymanga-chapter-12-1/, "12.1"
//	https://a.test/mymanga/              -> https://a.test/mymanga/, https://a.test/mymanga/, ""
func URLAndChapter(raw string) (base, withChapter, chapter string, err error) {
	raw = utils.TrimQuotes(raw)
	u, parseErr := url.Parse(raw)
	if parseErr != nil {
		return "", "", "", fmt.Errorf("invalid url %q: %w", raw, parseErr)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", "", fmt.Errorf("invalid url %q: not absolute", raw)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if !strings.Contains(last, "-chapter-") {
		return raw, raw, "", nil
	}

	left, right, _ := strings.Cut(last, "-chapter-")
	chapter = strings.ReplaceAll(right, "-", ".")
	segments[len(segments)-1] = left

	base = u.Scheme + "://" + u.Host + "/" + strings.Join(segments, "/")
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base, raw, chapter, nil
}
