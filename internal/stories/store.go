package stories

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/llehouerou/storytray/internal/db"
)

const (
	appName    = "storytray"
	dbFileName = "storytray.db"
)

const currentSchemaVersion = 1

// Store persists the story sequence in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the store in the XDG data directory, creating it if needed.
func Open() (*Store, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens a store at an explicit path. ":memory:" is accepted.
func OpenPath(path string) (*Store, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: conn}, nil
}

func initSchema(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS stories (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL UNIQUE,
			author TEXT,
			content TEXT NOT NULL,
			variant TEXT NOT NULL DEFAULT 'default',
			posted_at INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_stories_position ON stories(position);
	`)
	if err != nil {
		return err
	}

	_, err = conn.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load implements Source.
func (s *Store) Load() ([]Story, error) {
	return s.List()
}

// List returns all stories in display order.
func (s *Store) List() ([]Story, error) {
	rows, err := s.db.Query(`
		SELECT id, author, content, variant, posted_at
		FROM stories ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Story
	for rows.Next() {
		var st Story
		var author sql.NullString
		var postedAt sql.NullInt64
		if err := rows.Scan(&st.StoryID, &author, &st.Content, &st.Kind, &postedAt); err != nil {
			return nil, err
		}
		st.Author = db.NullStringValue(author)
		st.PostedAt = db.UnixTimeValue(postedAt)
		result = append(result, st)
	}
	return result, rows.Err()
}

// Count returns the number of stored stories.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM stories`).Scan(&n)
	return n, err
}

// Replace swaps the stored sequence for stories, atomically.
func (s *Store) Replace(stories []Story) error {
	return db.WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM stories`); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`
			INSERT INTO stories (id, position, author, content, variant, posted_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, st := range stories {
			_, err := stmt.Exec(st.StoryID, i, db.NullString(st.Author), st.Content,
				NormalizeVariant(st.Kind), db.NullUnixTime(st.PostedAt))
			if err != nil {
				return fmt.Errorf("insert story %q: %w", st.StoryID, err)
			}
		}
		return nil
	})
}
