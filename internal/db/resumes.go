package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

// CreateResume stores a new resume document and returns its id.
func (db *DB) CreateResume(ctx context.Context, title string, doc *types.ResumeDocument) (uuid.UUID, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume document: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (title, document) VALUES ($1, $2) RETURNING id`,
		title, docJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume loads a resume by id. Returns nil without an error when the id
// does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var (
		resume  Resume
		docJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, document, created_at, updated_at FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.Title, &docJSON, &resume.CreatedAt, &resume.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(docJSON, &resume.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume document: %w", err)
	}
	return &resume, nil
}

// UpdateResume replaces a resume's title and document. Returns false when the
// id does not exist.
func (db *DB) UpdateResume(ctx context.Context, id uuid.UUID, title string, doc *types.ResumeDocument) (bool, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to marshal resume document: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET title = $1, document = $2, updated_at = NOW() WHERE id = $3`,
		title, docJSON, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteResume removes a resume. Returns false when the id does not exist.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListResumes returns stored resumes without their documents, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, created_at, updated_at FROM resumes ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]Resume, 0)
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.Title, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, rows.Err()
}
