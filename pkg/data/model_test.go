package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLAndChapter(t *testing.T) {
	base, withChapter, chapter, err := URLAndChapter("https://some.example.com/tsuki-ga-michibiku-isekai-douchuu-chapter-12-1/")
	assert.NoError(t, err)
	assert.Equal(t, "https://some.example.com/tsuki-ga-michibiku-isekai-douchuu/", base)
	assert.Equal(t, "https://some.example.com/tsuki-ga-michibiku-isekai-douchuu-chapter-12-1/", withChapter)
	assert.Equal(t, "12.1", chapter)
}

func TestURLAndChapterWholeNumber(t *testing.T) {
	base, withChapter, chapter, err := URLAndChapter("https://a.test/mymanga-chapter-42")
	assert.NoError(t, err)
	assert.Equal(t, "https://a.test/mymanga/", base)
	assert.Equal(t, "https://a.test/mymanga-chapter-42", withChapter)
	assert.Equal(t, "42", chapter)
}

func TestURLAndChapterNoChapter(t *testing.T) {
	base, withChapter, chapter, err := URLAndChapter("https://a.test/mymanga/")
	assert.NoError(t, err)
	assert.Equal(t, "https://a.test/mymanga/", base)
	assert.Equal(t, "https://a.test/mymanga/", withChapter)
	assert.Equal(t, "", chapter)
}

func TestURLAndChapterKeepsPort(t *testing.T) {
	base, _, chapter, err := URLAndChapter("http://a.test:8080/deep/path/name-chapter-3/")
	assert.NoError(t, err)
	assert.Equal(t, "http://a.test:8080/deep/path/name/", base)
	assert.Equal(t, "3", chapter)
}

func TestURLAndChapterRejectsRelative(t *testing.T) {
	_, _, _, err := URLAndChapter("not a url")
	assert.Error(t, err)

	_, _, _, err = URLAndChapter("/just/a/path")
	assert.Error(t, err)
}

func TestNormalizeURL(t *testing.T) {
	got, err := NormalizeURL("HTTPS://Some.Example.COM/Manga/Path")
	assert.NoError(t, err)
	assert.Equal(t, "https://some.example.com/Manga/Path", got)

	// about: links have no host and are not store material
	_, err = NormalizeURL("about:downloads")
	assert.Error(t, err)
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"Action", "action", " ", "", "#アニメ化", "ACTION", "drama"})
	assert.Equal(t, []string{"Action", "#アニメ化", "drama"}, got)
}

func TestJoinSplitTags(t *testing.T) {
	tags := []string{"action", "isekai"}
	assert.Equal(t, "action;isekai", JoinTags(tags))
	assert.Equal(t, tags, SplitTags("action;isekai"))
	assert.Nil(t, SplitTags(""))
}

func TestValidate(t *testing.T) {
	m := &Manga{Title: "Foo", URL: "http://a.test/x"}
	assert.NoError(t, m.Validate())

	m = &Manga{Title: "", URL: "http://a.test/x"}
	assert.Error(t, m.Validate())

	m = &Manga{Title: "Foo", URL: "not a url"}
	assert.Error(t, m.Validate())
}

func TestEqualAndClone(t *testing.T) {
	m := &Manga{
		ID:               1,
		Title:            "My Manga",
		TitleRomanized:   "My Romanized Manga",
		URL:              "https://example.com/manga/",
		URLWithChapter:   "https://example.com/manga/manga-chapter-1/",
		Chapter:          "1",
		LastUpdate:       "2021-01-01T00:00:00",
		LastUpdateMillis: 1609459200000,
		Notes:            "My notes",
		Tags:             []string{"tag1", "tag2"},
		MyAnimeList:      "https://myanimelist.net/manga/1",
	}

	c := m.Clone()
	assert.True(t, m.Equal(c))

	c.Tags[0] = "changed"
	assert.False(t, m.Equal(c))
	assert.Equal(t, "tag1", m.Tags[0]) // clone is deep

	c = m.Clone()
	c.Notes = ""
	assert.False(t, m.Equal(c))
}

func TestNormalize(t *testing.T) {
	m := &Manga{
		Title: `  "One Piece"  `,
		URL:   ` https://example.com/one-piece/ `,
		Tags:  []string{"Action", "action"},
		Notes: `"old"`,
	}
	m.Normalize()
	assert.Equal(t, "One Piece", m.Title)
	assert.Equal(t, "https://example.com/one-piece/", m.URL)
	assert.Equal(t, []string{"Action"}, m.Tags)
	assert.Equal(t, "old", m.Notes)
}
