package docname

import (
	"context"
	"time"
)

// Record is a journal entry for one completed rename.
type Record struct {
	ID          string     `json:"id"`
	RunID       string     `json:"runId"`
	Folder      string     `json:"folder"`
	OldPath     string     `json:"oldPath"`
	NewPath     string     `json:"newPath"`
	Name        string     `json:"name"`
	Category    string     `json:"category,omitempty"`
	ContentHash string     `json:"contentHash"`
	Model       string     `json:"model"`
	RenamedAt   time.Time  `json:"renamedAt"`
	RevertedAt  *time.Time `json:"revertedAt,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.RunID == "" {
		return Errorf(EINVALID, "record run ID required")
	}
	if r.OldPath == "" {
		return Errorf(EINVALID, "record old path required")
	}
	if r.NewPath == "" {
		return Errorf(EINVALID, "record new path required")
	}
	return nil
}

// JournalService represents a service for recording renames so they can be
// listed and reverted.
type JournalService interface {
	// CreateRecord stores a new record. ID and RenamedAt are assigned.
	CreateRecord(ctx context.Context, r *Record) error

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// LatestRunID returns the run ID of the most recent record that has
	// not been reverted. Returns ENOTFOUND if there is none.
	LatestRunID(ctx context.Context) (string, error)

	// MarkReverted flags a record as undone.
	// Returns ENOTFOUND if the record does not exist.
	MarkReverted(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	RunID    *string `json:"runId"`
	NewPath  *string `json:"newPath"`
	Reverted *bool   `json:"reverted"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RenameIndex reports whether a path is the result of an earlier rename
// that has not been undone.
type RenameIndex interface {
	// Renamed reports whether path is the new path of an active record.
	Renamed(ctx context.Context, path string) (bool, error)

	// Add marks path as renamed for the rest of the run.
	Add(path string)
}
