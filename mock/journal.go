package mock

import (
	"context"

	"github.com/fwojciec/docname"
)

var _ docname.JournalService = (*JournalService)(nil)

// JournalService is a mock implementation of docname.JournalService.
type JournalService struct {
	CreateRecordFn func(ctx context.Context, r *docname.Record) error
	FindRecordsFn  func(ctx context.Context, filter docname.RecordFilter) ([]*docname.Record, error)
	LatestRunIDFn  func(ctx context.Context) (string, error)
	MarkRevertedFn func(ctx context.Context, id string) error
}

func (s *JournalService) CreateRecord(ctx context.Context, r *docname.Record) error {
	return s.CreateRecordFn(ctx, r)
}

func (s *JournalService) FindRecords(ctx context.Context, filter docname.RecordFilter) ([]*docname.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *JournalService) LatestRunID(ctx context.Context) (string, error) {
	return s.LatestRunIDFn(ctx)
}

func (s *JournalService) MarkReverted(ctx context.Context, id string) error {
	return s.MarkRevertedFn(ctx, id)
}
