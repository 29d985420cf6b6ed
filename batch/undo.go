package batch

import (
	"context"
	"fmt"

	"github.com/fwojciec/docname"
)

// MoveFunc renames from to to.
type MoveFunc func(ctx context.Context, from, to string) error

// Undoer reverts the renames of a journaled run.
type Undoer struct {
	Journal docname.JournalService
	Move    MoveFunc
	Exists  func(path string) bool
}

// Undo moves every active record of runID back to its old path, newest
// first. An empty runID selects the latest run. Records whose new path is
// gone or whose old path is taken are skipped.
func (u *Undoer) Undo(ctx context.Context, runID string, report ReportFunc) (*Result, error) {
	if report == nil {
		report = func(Event) {}
	}

	if runID == "" {
		latest, err := u.Journal.LatestRunID(ctx)
		if err != nil {
			return nil, err
		}
		runID = latest
	}

	notReverted := false
	records, err := u.Journal.FindRecords(ctx, docname.RecordFilter{RunID: &runID, Reverted: &notReverted})
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: runID}
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if !u.Exists(r.NewPath) {
			res.Skipped++
			report(Event{Type: EventSkipped, Path: r.NewPath, Reason: "file no longer exists"})
			continue
		}
		if u.Exists(r.OldPath) {
			res.Skipped++
			report(Event{Type: EventSkipped, Path: r.NewPath, Reason: fmt.Sprintf("%s is occupied", r.OldPath)})
			continue
		}

		if err := u.Move(ctx, r.NewPath, r.OldPath); err != nil {
			if docname.Recoverable(err) {
				res.Skipped++
				report(Event{Type: EventSkipped, Path: r.NewPath, Reason: docname.ErrorMessage(err), Err: err})
				continue
			}
			return res, err
		}
		if err := u.Journal.MarkReverted(ctx, r.ID); err != nil {
			return res, err
		}

		res.Reverted++
		report(Event{Type: EventReverted, Path: r.NewPath, NewPath: r.OldPath})
	}

	return res, nil
}
