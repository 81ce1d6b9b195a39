package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Resume is a stored resume document with its row metadata.
type Resume struct {
	ID        uuid.UUID            `json:"id"`
	Title     string               `json:"title"`
	Document  types.ResumeDocument `json:"document"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// JobDescription is a stored job posting with its extracted keywords.
type JobDescription struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
}
