package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveJobDescription stores a job posting with its extracted keywords and
// returns the row id.
func (db *DB) SaveJobDescription(ctx context.Context, title, content string, kws []string) (uuid.UUID, error) {
	if kws == nil {
		kws = []string{}
	}
	kwJSON, err := json.Marshal(kws)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions (title, content, keywords) VALUES ($1, $2, $3) RETURNING id`,
		title, content, kwJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job description: %w", err)
	}
	return id, nil
}

// GetJobDescription loads a job posting by id. Returns nil without an error
// when the id does not exist.
func (db *DB) GetJobDescription(ctx context.Context, id uuid.UUID) (*JobDescription, error) {
	var (
		jd     JobDescription
		kwJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, content, keywords, created_at FROM job_descriptions WHERE id = $1`,
		id,
	).Scan(&jd.ID, &jd.Title, &jd.Content, &kwJSON, &jd.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}

	if err := json.Unmarshal(kwJSON, &jd.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}
	return &jd, nil
}

// ListJobDescriptions returns stored job postings without their content,
// newest first.
func (db *DB) ListJobDescriptions(ctx context.Context, limit int) ([]JobDescription, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, created_at FROM job_descriptions ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}
	defer rows.Close()

	jds := make([]JobDescription, 0)
	for rows.Next() {
		var jd JobDescription
		if err := rows.Scan(&jd.ID, &jd.Title, &jd.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job description row: %w", err)
		}
		jds = append(jds, jd)
	}
	return jds, rows.Err()
}
