package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/batch"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	if deps.Driver.Categories.Len() == 0 {
		fmt.Fprintf(deps.Stderr, "error: no categories configured. Set CATEGORIES or pass --categories\n")
		return docname.Errorf(docname.EINVALID, "no categories configured")
	}

	report := func(event batch.Event) {
		name := filepath.Base(event.Path)
		switch event.Type {
		case batch.EventRenamed:
			fmt.Fprintf(deps.Stdout, "Renamed %s to %s\n", name, filepath.Base(event.NewPath))
		case batch.EventPlanned:
			fmt.Fprintf(deps.Stdout, "Would rename %s to %s\n", name, filepath.Base(event.NewPath))
		case batch.EventSkipped:
			fmt.Fprintf(deps.Stdout, "Skipping %s: %s\n", name, event.Reason)
		case batch.EventCategoryRejected:
			fmt.Fprintf(deps.Stderr, "  %s: %s\n", name, event.Reason)
		case batch.EventFailed:
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", name, event.Reason)
		}
	}

	result, err := deps.Driver.Run(deps.Ctx, c.Folder, report)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "Renamed %d, skipped %d, failed %d\n", result.Renamed, result.Skipped, result.Failed)
	}
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	return nil
}
