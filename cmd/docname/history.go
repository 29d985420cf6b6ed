package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fwojciec/docname"
	"github.com/olekukonko/tablewriter"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := docname.RecordFilter{Limit: c.Limit}
	if c.RunID != "" {
		filter.RunID = &c.RunID
	}

	records, err := deps.Journal.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docname.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No renames recorded. Use 'docname run' to rename a folder.")
		return nil
	}

	table := tablewriter.NewWriter(deps.Stdout)
	table.SetHeader([]string{"Renamed At", "Run", "From", "To", "Category", "Reverted"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range records {
		reverted := ""
		if r.RevertedAt != nil {
			reverted = r.RevertedAt.Local().Format(time.DateTime)
		}
		table.Append([]string{
			r.RenamedAt.Local().Format(time.DateTime),
			r.RunID,
			filepath.Base(r.OldPath),
			filepath.Base(r.NewPath),
			r.Category,
			reverted,
		})
	}
	table.Render()

	return nil
}
