// Package batch walks a folder and renames each document after the name and
// category a language model picks for it.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/agext/levenshtein"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docname"
	"github.com/google/uuid"
)

// ListFunc lists the candidate files of a folder in processing order.
type ListFunc func(folder string) ([]string, error)

// Driver processes the files of a folder one at a time.
type Driver struct {
	List       ListFunc
	Extractor  docname.Extractor
	Generator  docname.Generator
	Renamer    docname.Renamer
	Categories docname.Categories

	// Journal and Index are optional. Without a journal nothing is recorded.
	Journal docname.JournalService
	Index   docname.RenameIndex

	// Model is stored on journal records.
	Model string

	// Timeout bounds each model call. Zero uses DefaultTimeout.
	Timeout time.Duration

	// RPS limits model calls per second. Zero means unlimited.
	RPS float64

	// KeepGoing makes every per-file error recoverable.
	KeepGoing bool

	// DryRun reports targets without renaming or journaling.
	DryRun bool
}

// Run processes every file returned by List for folder. Recoverable errors
// are reported and the file is skipped. Any other error stops the run and is
// returned with the partial result, unless KeepGoing is set.
func (d *Driver) Run(ctx context.Context, folder string, report ReportFunc) (*Result, error) {
	if report == nil {
		report = func(Event) {}
	}

	folder, err := filepath.Abs(folder)
	if err != nil {
		return nil, err
	}
	paths, err := d.List(folder)
	if err != nil {
		return nil, err
	}

	timeout := d.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	gen := NewLimitedGenerator(NewTimeoutGenerator(d.Generator, timeout), d.RPS)

	res := &Result{RunID: uuid.New().String()}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		renamed := res.Renamed
		err := d.process(ctx, gen, folder, path, res, report)
		if err == nil {
			continue
		}

		// A file renamed before the error (journal write) stays counted
		// as renamed only.
		counted := res.Renamed > renamed
		switch {
		case docname.Recoverable(err):
			if !counted {
				res.Skipped++
			}
			report(Event{Type: EventSkipped, Path: path, Reason: docname.ErrorMessage(err), Err: err})
		case d.KeepGoing && ctx.Err() == nil:
			if !counted {
				res.Failed++
			}
			report(Event{Type: EventFailed, Path: path, Reason: err.Error(), Err: err})
		default:
			if !counted {
				res.Failed++
			}
			return res, fmt.Errorf("%s: %w", path, err)
		}
	}

	return res, nil
}

func (d *Driver) process(ctx context.Context, gen docname.Generator, folder, path string, res *Result, report ReportFunc) error {
	if d.Index != nil {
		renamed, err := d.Index.Renamed(ctx, path)
		if err != nil {
			return err
		}
		if renamed {
			res.Skipped++
			report(Event{Type: EventSkipped, Path: path, Reason: "already renamed"})
			return nil
		}
	}

	content, err := d.Extractor.Extract(ctx, path)
	if err != nil {
		return err
	}
	if content.IsEmpty() {
		res.Skipped++
		report(Event{Type: EventSkipped, Path: path, Reason: "no text content"})
		return nil
	}
	text := content.String()

	nameReply, err := gen.Generate(ctx, docname.BuildNamePrompt(text))
	if err != nil {
		return err
	}
	categoryReply, err := gen.Generate(ctx, docname.BuildCategoryPrompt(text, d.Categories))
	if err != nil {
		return err
	}

	name := docname.CleanName(nameReply)
	if !docname.AcceptName(name) {
		res.Skipped++
		report(Event{Type: EventSkipped, Path: path, Reason: fmt.Sprintf("generated name %q is not usable", name)})
		return nil
	}

	category := docname.CleanCategory(categoryReply)
	if !d.Categories.Contains(category) {
		reason := fmt.Sprintf("category %q is not in the list", category)
		if hint := closest(category, d.Categories); hint != "" {
			reason += fmt.Sprintf(", did you mean %q?", hint)
		}
		report(Event{Type: EventCategoryRejected, Path: path, Reason: reason})
		category = ""
	}

	directive := docname.RenameDirective{Path: path, Name: name, Category: category}
	if d.DryRun {
		if err := directive.Validate(); err != nil {
			return err
		}
		res.Renamed++
		report(Event{Type: EventPlanned, Path: path, NewPath: directive.Target()})
		return nil
	}

	newPath, err := d.Renamer.Rename(ctx, directive)
	if err != nil {
		return err
	}
	res.Renamed++
	report(Event{Type: EventRenamed, Path: path, NewPath: newPath})

	if d.Index != nil {
		d.Index.Add(newPath)
	}
	if d.Journal == nil {
		return nil
	}
	return d.Journal.CreateRecord(ctx, &docname.Record{
		RunID:       res.RunID,
		Folder:      folder,
		OldPath:     path,
		NewPath:     newPath,
		Name:        name,
		Category:    category,
		ContentHash: hashContent(text),
		Model:       d.Model,
	})
}

// maxHintDistance is the largest edit distance offered as a suggestion.
const maxHintDistance = 2

// closest returns the category nearest to label, compared case-insensitively,
// or "" if none is within maxHintDistance edits.
func closest(label string, categories docname.Categories) string {
	if label == "" {
		return ""
	}
	best, bestDist := "", maxHintDistance+1
	for _, c := range categories.Labels() {
		dist := levenshtein.Distance(strings.ToLower(label), strings.ToLower(c), nil)
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}

// hashContent returns the xxHash of content as 16 hex digits.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
