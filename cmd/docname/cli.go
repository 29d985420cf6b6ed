package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor docname.Extractor
	Journal   docname.JournalService
	Driver    *batch.Driver
	Undoer    *batch.Undoer
}

// Model providers.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// EPUB chapter formats.
const (
	EpubMarkdown = "markdown"
	EpubText     = "text"
	EpubRaw      = "raw"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose    bool   `short:"v" help:"Log extraction, model calls, and renames to stderr"`
	EpubFormat string `name:"epub-format" default:"markdown" enum:"markdown,text,raw" help:"How EPUB chapters are rendered (markdown, text, raw)"`

	Run     RunCmd     `cmd:"" help:"Rename every document in a folder"`
	History HistoryCmd `cmd:"" help:"List journaled renames"`
	Undo    UndoCmd    `cmd:"" help:"Revert the renames of a run"`
	Extract ExtractCmd `cmd:"" help:"Print the content extracted from a file"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Folder      string        `arg:"" optional:"" default:"data" help:"Folder of documents to rename"`
	Categories  string        `env:"CATEGORIES" required:"" help:"Comma-separated list of categories, e.g. Finance,Personal"`
	Provider    string        `env:"DOCNAME_PROVIDER" default:"ollama" enum:"ollama,openai,gemini" help:"Model provider (ollama, openai, gemini)"`
	Model       string        `env:"DOCNAME_MODEL" help:"Model name (defaults per provider)"`
	BaseURL     string        `name:"base-url" env:"DOCNAME_BASE_URL" help:"OpenAI-compatible endpoint"`
	Timeout     time.Duration `env:"DOCNAME_TIMEOUT" default:"60s" help:"Timeout for each model call"`
	RPS         float64       `name:"rps" env:"DOCNAME_RPS" default:"0" help:"Model calls per second (0 is unlimited)"`
	KeepGoing   bool          `short:"k" help:"Report every per-file error and continue"`
	DryRun      bool          `short:"n" help:"Show new names without renaming"`
	SkipRenamed bool          `default:"true" negatable:"" help:"Skip files renamed by an earlier run"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	RunID string `name:"run" help:"Only show renames of this run"`
	Limit int    `short:"l" default:"50" help:"Maximum number of renames to show (0 for all)"`
}

// UndoCmd is the "undo" subcommand.
type UndoCmd struct {
	RunID string `name:"run" help:"Run to revert (defaults to the latest)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" type:"existingfile" help:"File to extract"`
}

// printError writes err to w. Application errors print their message;
// anything else is printed in full.
func printError(w io.Writer, err error) {
	if docname.ErrorCode(err) == docname.EINTERNAL {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "error: %s\n", docname.ErrorMessage(err))
}
