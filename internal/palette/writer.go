package palette

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MeKo-Tech/csscolor/color"

	_ "modernc.org/sqlite" // SQLite driver
)

const (
	// DefaultBatchSize is the number of colors to buffer before flushing to the database.
	DefaultBatchSize = 100
)

// Writer writes named colors to a palette database.
type Writer struct {
	db        *sql.DB
	path      string
	batch     []Entry
	metadata  Metadata
	batchSize int
	next      int
	mu        sync.Mutex
}

// New creates a palette writer.
// The database is created if it doesn't exist, and the schema is initialized.
func New(path string, metadata Metadata) (*Writer, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	var next int
	if err := db.QueryRow("SELECT COALESCE(MAX(position) + 1, 0) FROM colors").Scan(&next); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read palette size: %w", err)
	}

	return &Writer{
		db:        db,
		path:      path,
		batch:     make([]Entry, 0, DefaultBatchSize),
		batchSize: DefaultBatchSize,
		metadata:  metadata,
		next:      next,
	}, nil
}

// createSchema creates the palette database schema.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS metadata (
			name TEXT NOT NULL,
			value TEXT
		);

		CREATE TABLE IF NOT EXISTS colors (
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			red INTEGER NOT NULL,
			green INTEGER NOT NULL,
			blue INTEGER NOT NULL,
			alpha REAL NOT NULL,
			css TEXT NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS color_index ON colors (name);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// writeMetadata replaces the metadata table contents.
func writeMetadata(tx *sql.Tx, meta Metadata) error {
	if _, err := tx.Exec("DELETE FROM metadata"); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO metadata (name, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare metadata insert: %w", err)
	}
	defer stmt.Close()

	for key, value := range meta.ToMap() {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to insert metadata %q: %w", key, err)
		}
	}

	return nil
}

// WriteColor adds a named color to the batch. When the batch is full, it is automatically flushed.
// Writing an existing name replaces its color and keeps its position.
func (w *Writer) WriteColor(name string, c *color.Color) error {
	if name == "" {
		return fmt.Errorf("color name must not be empty")
	}
	if c == nil {
		return fmt.Errorf("color %q is nil", name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.batch = append(w.batch, Entry{Name: name, Color: c})

	if len(w.batch) >= w.batchSize {
		return w.flushLocked()
	}

	return nil
}

// Flush writes any buffered colors and the metadata to the database.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushLocked()
}

// flushLocked writes buffered colors to the database. Must be called with lock held.
func (w *Writer) flushLocked() error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO colors (name, position, red, green, blue, alpha, css) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	next := w.next
	for _, e := range w.batch {
		// Replacing an existing name keeps its position
		var pos int
		err := tx.QueryRow("SELECT position FROM colors WHERE name = ?", e.Name).Scan(&pos)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			pos = next
			next++
		case err != nil:
			return fmt.Errorf("failed to look up color %q: %w", e.Name, err)
		}

		c := e.Color
		if _, err := stmt.Exec(e.Name, pos, c.Red(), c.Green(), c.Blue(), c.Alpha(), c.String()); err != nil {
			return fmt.Errorf("failed to insert color %q: %w", e.Name, err)
		}
	}

	meta := w.metadata
	meta.Count = next
	if err := writeMetadata(tx, meta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.next = next
	w.batch = w.batch[:0]
	return nil
}

// Close flushes any remaining colors and closes the database.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		w.db.Close()
		return err
	}

	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
