package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/batch"
	main "github.com/fwojciec/docname/cmd/docname"
	"github.com/fwojciec/docname/fs"
	"github.com/fwojciec/docname/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("restores files of the given run", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		renamed := writeFile(t, dir, "Finance_Budget.txt", "budget")
		journal := &mock.JournalService{
			FindRecordsFn: func(_ context.Context, filter docname.RecordFilter) ([]*docname.Record, error) {
				require.NotNil(t, filter.RunID)
				assert.Equal(t, "run-7", *filter.RunID)
				return []*docname.Record{{ID: "1", RunID: "run-7", OldPath: filepath.Join(dir, "budget.txt"), NewPath: renamed}}, nil
			},
			MarkRevertedFn: func(context.Context, string) error { return nil },
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Undoer: &batch.Undoer{Journal: journal, Move: fs.Move, Exists: fs.Exists},
		}

		err := (&main.UndoCmd{RunID: "run-7"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Restored Finance_Budget.txt to budget.txt")
		assert.Contains(t, stdout.String(), "Reverted 1, skipped 0 (run run-7)")
		assert.FileExists(t, filepath.Join(dir, "budget.txt"))
	})

	t.Run("empty journal is not an error", func(t *testing.T) {
		t.Parallel()

		journal := &mock.JournalService{
			LatestRunIDFn: func(context.Context) (string, error) {
				return "", docname.Errorf(docname.ENOTFOUND, "journal is empty")
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Undoer: &batch.Undoer{Journal: journal, Move: fs.Move, Exists: fs.Exists},
		}

		err := (&main.UndoCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Nothing to undo.")
	})
}
