// Package draft provides a local SQLite-backed recovery store for in-progress
// resume edits. The web client autosaves a draft after every edit; on load,
// a draft newer than the stored resume wins. Pure-Go driver, no cgo.
package draft

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/jonathan/resume-builder/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	resume_id TEXT PRIMARY KEY,
	document TEXT NOT NULL,
	saved_at TIMESTAMP NOT NULL
);
`

// Store is a draft store backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the draft database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open draft store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize draft store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the draft for a resume id.
func (s *Store) Save(resumeID string, doc *types.ResumeDocument) error {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO drafts (resume_id, document, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(resume_id) DO UPDATE SET document = excluded.document, saved_at = excluded.saved_at`,
		resumeID, string(docJSON), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Load returns the draft for a resume id, or (nil, time zero, nil) when no
// draft exists. A corrupt stored draft is treated as absent rather than
// failing recovery.
func (s *Store) Load(resumeID string) (*types.ResumeDocument, time.Time, error) {
	var (
		docJSON string
		savedAt time.Time
	)
	err := s.db.QueryRow(
		`SELECT document, saved_at FROM drafts WHERE resume_id = ?`, resumeID,
	).Scan(&docJSON, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load draft: %w", err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
		return nil, time.Time{}, nil
	}
	return &doc, savedAt, nil
}

// Delete removes the draft for a resume id, typically after a successful save
// to the primary store. Missing drafts are not an error.
func (s *Store) Delete(resumeID string) error {
	if _, err := s.db.Exec(`DELETE FROM drafts WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// List returns the resume ids with saved drafts, most recent first.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT resume_id FROM drafts ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan draft row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
