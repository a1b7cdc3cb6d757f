package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Column order never changes; new columns go at the end.
const schema = `
CREATE TABLE IF NOT EXISTS manga (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	title_romanized TEXT,
	url TEXT NOT NULL UNIQUE,
	url_with_chapter TEXT,
	chapter TEXT,
	last_update TEXT,
	last_update_millis INTEGER,
	notes TEXT,
	tags TEXT,
	my_anime_list TEXT
);`

// InitSQLite opens (creating if absent) the store at path and makes sure the
// schema exists. Safe to call on an already-initialized file.
func InitSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma foreign_keys: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma journal_mode: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

const selectColumns = `id, title, title_romanized, url, url_with_chapter, chapter,
	last_update, last_update_millis, notes, tags, my_anime_list`

// ListMangas returns every stored record ordered by url so output derived
// from it stays diffable across runs.
func (r *Repository) ListMangas() ([]*Manga, error) {
	rows, err := r.db.Query(`SELECT ` + selectColumns + ` FROM manga ORDER BY url`)
	if err != nil {
		return nil, fmt.Errorf("list manga: %w", err)
	}
	defer rows.Close()

	var mangas []*Manga
	for rows.Next() {
		m, err := scanManga(rows)
		if err != nil {
			return nil, err
		}
		mangas = append(mangas, m)
	}
	return mangas, rows.Err()
}

func (r *Repository) GetManga(id int64) (*Manga, error) {
	row := r.db.QueryRow(`SELECT `+selectColumns+` FROM manga WHERE id = ?`, id)
	m, err := scanManga(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get manga %d: %w", id, err)
	}
	return m, nil
}

// InsertManga adds a new row and writes the assigned id back into m.
func (r *Repository) InsertManga(m *Manga) error {
	return r.insertManga(r.db, m)
}

// UpdateManga overwrites the row matching m.ID.
func (r *Repository) UpdateManga(m *Manga) error {
	return r.updateManga(r.db, m)
}

// UpsertManga inserts when m.ID is 0, updates otherwise. Resolving which
// record a candidate belongs to is the reconciler's job; the store only
// deals in primary keys.
func (r *Repository) UpsertManga(m *Manga) error {
	if m.ID == 0 {
		return r.InsertManga(m)
	}
	return r.UpdateManga(m)
}

// ApplyBatch upserts all records in one transaction; either every record
// lands or none do. Assigned ids are written back into the records.
func (r *Repository) ApplyBatch(records []*Manga) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}

	for _, m := range records {
		if m.ID == 0 {
			err = r.insertManga(tx, m)
		} else {
			err = r.updateManga(tx, m)
		}
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

func (r *Repository) DeleteManga(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM manga WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete manga %d: %w", id, err)
	}
	return nil
}

// execer lets the write helpers run against either the db or a transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (r *Repository) insertManga(e execer, m *Manga) error {
	res, err := e.Exec(`
		INSERT INTO manga (title, title_romanized, url, url_with_chapter, chapter,
			last_update, last_update_millis, notes, tags, my_anime_list)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Title,
		nullString(m.TitleRomanized),
		m.URL,
		nullString(m.URLWithChapter),
		nullString(m.Chapter),
		nullString(m.LastUpdate),
		nullInt(m.LastUpdateMillis),
		nullString(m.Notes),
		nullString(JoinTags(m.Tags)),
		nullString(m.MyAnimeList),
	)
	if err != nil {
		return fmt.Errorf("insert %q: %w", m.URL, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert %q: %w", m.URL, err)
	}
	m.ID = id
	return nil
}

func (r *Repository) updateManga(e execer, m *Manga) error {
	if m.ID == 0 {
		return fmt.Errorf("update %q: id is 0", m.URL)
	}
	res, err := e.Exec(`
		UPDATE manga SET title = ?, title_romanized = ?, url = ?, url_with_chapter = ?,
			chapter = ?, last_update = ?, last_update_millis = ?, notes = ?, tags = ?,
			my_anime_list = ?
		WHERE id = ?`,
		m.Title,
		nullString(m.TitleRomanized),
		m.URL,
		nullString(m.URLWithChapter),
		nullString(m.Chapter),
		nullString(m.LastUpdate),
		nullInt(m.LastUpdateMillis),
		nullString(m.Notes),
		nullString(JoinTags(m.Tags)),
		nullString(m.MyAnimeList),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("update %q: %w", m.URL, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %q: %w", m.URL, err)
	}
	if n == 0 {
		return fmt.Errorf("update %q: id %d not found", m.URL, m.ID)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanManga(row scannable) (*Manga, error) {
	var (
		m              Manga
		titleRomanized sql.NullString
		urlWithChapter sql.NullString
		chapter        sql.NullString
		lastUpdate     sql.NullString
		lastMillis     sql.NullInt64
		notes          sql.NullString
		tags           sql.NullString
		myAnimeList    sql.NullString
	)
	err := row.Scan(&m.ID, &m.Title, &titleRomanized, &m.URL, &urlWithChapter,
		&chapter, &lastUpdate, &lastMillis, &notes, &tags, &myAnimeList)
	if err != nil {
		return nil, err
	}
	m.TitleRomanized = titleRomanized.String
	m.URLWithChapter = urlWithChapter.String
	m.Chapter = chapter.String
	m.LastUpdate = lastUpdate.String
	m.LastUpdateMillis = lastMillis.Int64
	m.Notes = notes.String
	m.Tags = SplitTags(tags.String)
	return &m, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(n int64) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: n, Valid: true}
}
