package palette

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MeKo-Tech/csscolor/color"
)

// ErrColorNotFound is returned when a palette has no color with the requested name.
var ErrColorNotFound = errors.New("color not found")

// Reader reads colors from a palette database.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens a palette database for reading.
func OpenReader(path string) (*Reader, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro&immutable=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='colors'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain colors table")
	}

	return &Reader{
		db:   db,
		path: path,
	}, nil
}

// Colors returns every color in palette order.
func (r *Reader) Colors() ([]Entry, error) {
	rows, err := r.db.Query("SELECT name, position, red, green, blue, alpha FROM colors ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating colors: %w", err)
	}

	return entries, nil
}

// Color returns a single named color.
func (r *Reader) Color(name string) (Entry, error) {
	row := r.db.QueryRow("SELECT name, position, red, green, blue, alpha FROM colors WHERE name = ?", name)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrColorNotFound, name)
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e       Entry
		r, g, b int
		alpha   float64
	)
	if err := s.Scan(&e.Name, &e.Position, &r, &g, &b, &alpha); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("failed to scan color row: %w", err)
	}

	c, err := color.FromRGBA(r, g, b, alpha)
	if err != nil {
		return Entry{}, fmt.Errorf("stored color %q is invalid: %w", e.Name, err)
	}
	e.Color = c
	return e, nil
}

// Metadata reads metadata from the database.
func (r *Reader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	metaMap := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		metaMap[name] = value
	}

	if err := rows.Err(); err != nil {
		return Metadata{}, fmt.Errorf("error iterating metadata: %w", err)
	}

	meta := Metadata{
		Name:        metaMap["name"],
		Description: metaMap["description"],
		Attribution: metaMap["attribution"],
		Version:     metaMap["version"],
	}
	if v, ok := metaMap["count"]; ok {
		if i, err := strconv.Atoi(v); err == nil {
			meta.Count = i
		}
	}

	return meta, nil
}

// Close closes the database connection.
func (r *Reader) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
