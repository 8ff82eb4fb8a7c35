// Package store persists notes in a local SQLite database. It is the only
// shared mutable resource in the daemon; access is serialized through the
// embedded *sql.DB and callers never take additional locks around it.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by GetById when no note has the given id.
var ErrNotFound = errors.New("note not found")

// Note is a persisted note record.
type Note struct {
	// Id is assigned by the store on insert; 0 means not yet persisted.
	Id   int64
	Text string
	// DueAt is the reminder time in epoch milliseconds; nil means the
	// note has no reminder.
	DueAt *int64
}

// Store wraps the notes database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS notes (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    text    TEXT NOT NULL,
    due_at  INTEGER
);
CREATE INDEX IF NOT EXISTS idx_notes_due_at ON notes(due_at);
`

// Open opens (creating if needed) the notes database at dbPath and
// bootstraps the schema.
func Open(dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open notes database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error: failed to initialize notes schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert persists a new note and returns its assigned id.
func (s *Store) Insert(n *Note) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO notes (text, due_at) VALUES (?, ?)`,
		n.Text, n.DueAt,
	)
	if err != nil {
		return 0, fmt.Errorf("error: failed to insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error: failed to read inserted note id: %w", err)
	}
	n.Id = id
	return id, nil
}

// Update rewrites an existing note's text and due time.
func (s *Store) Update(n *Note) error {
	res, err := s.db.Exec(
		`UPDATE notes SET text = ?, due_at = ? WHERE id = ?`,
		n.Text, n.DueAt, n.Id,
	)
	if err != nil {
		return fmt.Errorf("error: failed to update note %d: %w", n.Id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error: failed to check update of note %d: %w", n.Id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a note by id. Deleting an absent id is not an error.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("error: failed to delete note %d: %w", id, err)
	}
	return nil
}

// GetById returns the note with the given id, or ErrNotFound.
func (s *Store) GetById(id int64) (*Note, error) {
	row := s.db.QueryRow(`SELECT id, text, due_at FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error: failed to load note %d: %w", id, err)
	}
	return n, nil
}

// GetAll returns every persisted note, ordered by due time ascending with
// reminder-less notes last.
func (s *Store) GetAll() ([]*Note, error) {
	rows, err := s.db.Query(
		`SELECT id, text, due_at FROM notes ORDER BY due_at IS NULL, due_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("error: failed to scan note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate note rows: %w", err)
	}
	return notes, nil
}

// GetNextDueAfter returns the note with the earliest due time strictly
// after the given epoch-millisecond timestamp, or nil when none exists.
func (s *Store) GetNextDueAfter(afterMs int64) (*Note, error) {
	row := s.db.QueryRow(
		`SELECT id, text, due_at FROM notes
         WHERE due_at IS NOT NULL AND due_at > ?
         ORDER BY due_at ASC LIMIT 1`,
		afterMs,
	)
	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error: failed to query next due note: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(r rowScanner) (*Note, error) {
	var (
		n   Note
		due sql.NullInt64
	)
	if err := r.Scan(&n.Id, &n.Text, &due); err != nil {
		return nil, err
	}
	if due.Valid {
		v := due.Int64
		n.DueAt = &v
	}
	return &n, nil
}
