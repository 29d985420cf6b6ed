// Package bloom provides a fast membership pre-check for renamed paths
// using a Bloom filter.
package bloom

import (
	"context"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/docname"
)

// Ensure Index implements docname.RenameIndex at compile time.
var _ docname.RenameIndex = (*Index)(nil)

const (
	minCapacity = 1024
	fpRate      = 0.001
)

// Index answers docname.RenameIndex queries. The filter rules out most
// paths without a query; hits are confirmed against the journal.
type Index struct {
	filter  *bloom.BloomFilter
	journal docname.JournalService
}

// NewIndex loads the new paths of all active journal records.
func NewIndex(ctx context.Context, journal docname.JournalService) (*Index, error) {
	notReverted := false
	records, err := journal.FindRecords(ctx, docname.RecordFilter{Reverted: &notReverted})
	if err != nil {
		return nil, err
	}

	f := bloom.NewWithEstimates(uint(max(minCapacity, 2*len(records))), fpRate)
	for _, r := range records {
		f.AddString(r.NewPath)
	}

	return &Index{filter: f, journal: journal}, nil
}

// Renamed reports whether path is the new path of an active record.
func (x *Index) Renamed(ctx context.Context, path string) (bool, error) {
	if !x.filter.TestString(path) {
		return false, nil
	}

	notReverted := false
	records, err := x.journal.FindRecords(ctx, docname.RecordFilter{
		NewPath:  &path,
		Reverted: &notReverted,
		Limit:    1,
	})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// Add records path in the filter. The journal entry is written separately.
func (x *Index) Add(path string) {
	x.filter.AddString(path)
}
