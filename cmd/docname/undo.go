package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/batch"
)

// Run executes the undo command.
func (c *UndoCmd) Run(deps *Dependencies) error {
	report := func(event batch.Event) {
		switch event.Type {
		case batch.EventReverted:
			fmt.Fprintf(deps.Stdout, "Restored %s to %s\n", filepath.Base(event.Path), filepath.Base(event.NewPath))
		case batch.EventSkipped:
			fmt.Fprintf(deps.Stdout, "Skipping %s: %s\n", filepath.Base(event.Path), event.Reason)
		}
	}

	result, err := deps.Undoer.Undo(deps.Ctx, c.RunID, report)
	if docname.ErrorCode(err) == docname.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "Nothing to undo.")
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docname.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Reverted %d, skipped %d (run %s)\n", result.Reverted, result.Skipped, result.RunID)
	return nil
}
