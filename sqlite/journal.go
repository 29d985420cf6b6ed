package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/docname"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docname.JournalService = (*JournalService)(nil)

// JournalService implements docname.JournalService using SQLite.
type JournalService struct {
	db *DB
}

// NewJournalService creates a new JournalService.
func NewJournalService(db *DB) *JournalService {
	return &JournalService{db: db}
}

const recordColumns = "id, run_id, folder, old_path, new_path, name, category, content_hash, model, renamed_at, reverted_at"

// CreateRecord stores a new record with a generated ID and timestamp.
func (s *JournalService) CreateRecord(ctx context.Context, r *docname.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.ID = uuid.New().String()
	r.RenamedAt = time.Now().UTC().Truncate(time.Second)
	r.RevertedAt = nil

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`, r.ID, r.RunID, r.Folder, r.OldPath, r.NewPath, r.Name, r.Category, r.ContentHash, r.Model,
		r.RenamedAt.Format(time.RFC3339))

	return err
}

// FindRecords retrieves records matching the filter, newest first.
func (s *JournalService) FindRecords(ctx context.Context, filter docname.RecordFilter) ([]*docname.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.NewPath != nil {
		query.WriteString(" AND new_path = ?")
		args = append(args, *filter.NewPath)
	}
	if filter.Reverted != nil {
		if *filter.Reverted {
			query.WriteString(" AND reverted_at IS NOT NULL")
		} else {
			query.WriteString(" AND reverted_at IS NULL")
		}
	}

	query.WriteString(" ORDER BY renamed_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*docname.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// LatestRunID returns the run ID of the most recently inserted record that
// has not been reverted.
func (s *JournalService) LatestRunID(ctx context.Context) (string, error) {
	var runID string
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id FROM records
		WHERE reverted_at IS NULL
		ORDER BY rowid DESC LIMIT 1
	`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", docname.Errorf(docname.ENOTFOUND, "no renames left to revert")
	}
	if err != nil {
		return "", err
	}
	return runID, nil
}

// MarkReverted sets the reverted timestamp of a record.
func (s *JournalService) MarkReverted(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE records SET reverted_at = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return docname.Errorf(docname.ENOTFOUND, "record not found")
	}

	return nil
}

func scanRecord(rows *sql.Rows) (*docname.Record, error) {
	var r docname.Record
	var renamedAt string
	var revertedAt sql.NullString

	if err := rows.Scan(&r.ID, &r.RunID, &r.Folder, &r.OldPath, &r.NewPath, &r.Name,
		&r.Category, &r.ContentHash, &r.Model, &renamedAt, &revertedAt); err != nil {
		return nil, err
	}

	var err error
	if r.RenamedAt, err = parseRFC3339(renamedAt, "renamed_at"); err != nil {
		return nil, err
	}
	if revertedAt.Valid {
		t, err := parseRFC3339(revertedAt.String, "reverted_at")
		if err != nil {
			return nil, err
		}
		r.RevertedAt = &t
	}

	return &r, nil
}
