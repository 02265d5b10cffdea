package promptblog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Source is a SQLite snapshot of the post collection. The server reads it
// once at startup; only the seed command writes to it.
type Source struct {
	db *sql.DB
}

// OpenSource opens (or creates) the SQLite database at path, ensures the
// data directory exists, and creates the schema.
func OpenSource(path string) (*Source, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &Source{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Source) Close() error {
	return s.db.Close()
}

func (s *Source) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    content TEXT NOT NULL,
    meta_description TEXT NOT NULL,
    author TEXT NOT NULL,
    publish_date TEXT NOT NULL,
    last_modified TEXT NOT NULL,
    tags TEXT NOT NULL,
    category TEXT NOT NULL,
    read_time INTEGER NOT NULL,
    featured INTEGER NOT NULL DEFAULT 0,
    keywords TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

// Load returns every post in snapshot order.
func (s *Source) Load() ([]BlogPost, error) {
	rows, err := s.db.Query(`SELECT id, slug, title, excerpt, content, meta_description, author,
		publish_date, last_modified, tags, category, read_time, featured, keywords, image, url
		FROM posts ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []BlogPost{}
	for rows.Next() {
		var p BlogPost
		var tags, keywords string
		var featured int
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.MetaDescription, &p.Author,
			&p.PublishDate, &p.LastModified, &tags, &p.Category, &p.ReadTime, &featured, &keywords, &p.Image, &p.URL); err != nil {
			return nil, err
		}
		p.Tags = ParseTags(tags)
		p.Keywords = ParseTags(keywords)
		p.Featured = featured == 1
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Import replaces the snapshot with posts, keeping their order.
func (s *Source) Import(posts []BlogPost) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM posts`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO posts (id, position, slug, title, excerpt, content, meta_description, author,
		publish_date, last_modified, tags, category, read_time, featured, keywords, image, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range posts {
		featured := 0
		if p.Featured {
			featured = 1
		}
		if _, err = stmt.Exec(p.ID, i, p.Slug, p.Title, p.Excerpt, p.Content, p.MetaDescription, p.Author,
			p.PublishDate, p.LastModified, formatTags(p.Tags), p.Category, p.ReadTime, featured,
			formatTags(p.Keywords), p.Image, p.URL); err != nil {
			return fmt.Errorf("insert %q: %w", p.Slug, err)
		}
	}
	return tx.Commit()
}

// ErrEmptySnapshot is returned by LoadPostStore for a snapshot without posts.
var ErrEmptySnapshot = errors.New("content snapshot has no posts")

// LoadPostStore builds the post store for cfg: from the SQLite snapshot when
// ContentDatabasePath is set, otherwise from the compiled-in seed. The
// snapshot must already exist and hold at least one post; it is never
// created here. Posts are validated before the store is built.
func LoadPostStore(cfg SiteConfig) (*PostStore, error) {
	cfg.setDefaults()
	posts := DefaultPosts(cfg.URL)
	if cfg.ContentDatabasePath != "" {
		if _, err := os.Stat(cfg.ContentDatabasePath); err != nil {
			return nil, fmt.Errorf("content db: %w", err)
		}
		src, err := OpenSource(cfg.ContentDatabasePath)
		if err != nil {
			return nil, fmt.Errorf("open content db: %w", err)
		}
		defer src.Close()
		if posts, err = src.Load(); err != nil {
			return nil, fmt.Errorf("load posts: %w", err)
		}
		if len(posts) == 0 {
			return nil, fmt.Errorf("%s: %w", cfg.ContentDatabasePath, ErrEmptySnapshot)
		}
		posts = FillURLs(posts, cfg.URL)
	}
	if err := ValidatePosts(posts); err != nil {
		return nil, fmt.Errorf("invalid posts: %w", err)
	}
	return NewPostStore(posts), nil
}
