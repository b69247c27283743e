// Package store persists analysis history. Two backends implement the same
// interface: PostgreSQL for deployments and SQLite for local use.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is one row of analysis history: which file was scored
// against which job description, and when.
type AnalysisRecord struct {
	ID             uuid.UUID `json:"id"`
	Filename       string    `json:"filename"`
	JobDescription string    `json:"job_description"`
	Score          float64   `json:"score"`
	CreatedAt      time.Time `json:"created_at"`
}

// Store is the persistence surface the server and CLI depend on.
type Store interface {
	// SaveAnalysis inserts a history row and returns its generated ID.
	SaveAnalysis(ctx context.Context, filename, jobDescription string, score float64) (uuid.UUID, error)
	// ListAnalyses returns up to limit rows, newest first.
	ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error)
	// Close releases the underlying connections.
	Close()
}
