// Package store persists analysis run history.
package store

import (
	"context"
	"time"
)

// Store is the interface for recording and querying analysis runs.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is one recorded analysis run.
type Run struct {
	ID              string // ULID
	CreatedAt       time.Time
	TotalDocs       int64
	DistinctCats    int64
	DistinctTags    int64
	Recommendations int64
	Duplicates      int64
	Skipped         int64
	ReportPath      string
}
