package integrations

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/data"
	"github.com/HidekiAI/firefox-bookmark-to-sqlite3/pkg/utils"
)

// SnapshotHeader is the CSV column set, matching the store's column order.
var SnapshotHeader = []string{
	"id",
	"title",
	"title_romanized",
	"url",
	"url_with_chapter",
	"chapter",
	"last_update",
	"last_update_millis",
	"notes",
	"tags",
	"my_anime_list",
}

// WriteSnapshot renders the record set as CSV, sorted by url so two runs
// over the same state produce byte-identical output. The input slice is not
// reordered.
func WriteSnapshot(w io.Writer, records []*data.Manga) error {
	sorted := append([]*data.Manga(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].URL < sorted[j].URL })

	cw := csv.NewWriter(w)
	if err := cw.Write(SnapshotHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range sorted {
		id := ""
		if m.ID != 0 {
			id = strconv.FormatInt(m.ID, 10)
		}
		millis := ""
		if m.LastUpdateMillis != 0 {
			millis = strconv.FormatInt(m.LastUpdateMillis, 10)
		}
		row := []string{
			id,
			utils.Sanitize(m.Title),
			utils.Sanitize(m.TitleRomanized),
			m.URL,
			m.URLWithChapter,
			m.Chapter,
			m.LastUpdate,
			millis,
			utils.Sanitize(m.Notes),
			data.JoinTags(m.Tags),
			m.MyAnimeList,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %q: %w", m.URL, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSnapshotFile writes the snapshot to path, creating parent dirs.
func WriteSnapshotFile(path string, records []*data.Manga) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	return WriteSnapshot(f, records)
}

// ReadSnapshot loads a previously written snapshot. Columns are located by
// header name, so older snapshots with fewer columns still load.
func ReadSnapshot(r io.Reader) ([]*data.Manga, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	index := make(map[string]int, len(head))
	for i, name := range head {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}

	at := func(row []string, key string) string {
		i, ok := index[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []*data.Manga
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		m := &data.Manga{
			Title:          at(row, "title"),
			TitleRomanized: at(row, "title_romanized"),
			URL:            at(row, "url"),
			URLWithChapter: at(row, "url_with_chapter"),
			Chapter:        at(row, "chapter"),
			LastUpdate:     at(row, "last_update"),
			Notes:          at(row, "notes"),
			Tags:           data.SplitTags(at(row, "tags")),
			MyAnimeList:    at(row, "my_anime_list"),
		}
		if raw := at(row, "id"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				m.ID = id
			}
		}
		if raw := at(row, "last_update_millis"); raw != "" {
			if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
				m.LastUpdateMillis = millis
			}
		}
		records = append(records, m)
	}
	return records, nil
}

// ReadSnapshotFile loads a snapshot from disk.
func ReadSnapshotFile(path string) ([]*data.Manga, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
