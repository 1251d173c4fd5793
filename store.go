package postgrid

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/postgrid/grid"
)

// SQLiteSource reads the post index from a pubengine blog database, so a
// pubengine site can drive the grid without a separate posts.json build.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens the SQLite database at path read-only. The file is
// owned by the blog engine; a missing file or posts table surfaces from Load.
func NewSQLiteSource(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", sqliteReadOnlyDSN(path))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(2)
	return &SQLiteSource{db: db}, nil
}

// sqliteReadOnlyDSN builds a URI filename that never creates the database and
// waits out the writer's locks.
func sqliteReadOnlyDSN(path string) string {
	return "file:" + filepath.ToSlash(path) + "?mode=ro&_pragma=busy_timeout(5000)"
}

// Close closes the underlying database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Load implements Source: published posts, newest first.
func (s *SQLiteSource) Load(ctx context.Context) ([]grid.Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, title, date, tags FROM posts WHERE published = 1 ORDER BY date DESC, slug`)
	if err != nil {
		return nil, fmt.Errorf("postgrid: query posts: %w", err)
	}
	defer rows.Close()

	posts := []grid.Post{}
	for rows.Next() {
		var slug, title, date, tags string
		if err := rows.Scan(&slug, &title, &date, &tags); err != nil {
			return nil, err
		}
		posts = append(posts, grid.Post{
			Title:       title,
			URL:         "/blog/" + slug + "/",
			Date:        date,
			DisplayDate: displayDate(date),
			Tags:        ParseTags(tags),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// displayDate formats an ISO date for humans, passing anything else through.
func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return FilterEmpty(parts)
}
