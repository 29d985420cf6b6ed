package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/batch"
	"github.com/fwojciec/docname/bloom"
	"github.com/fwojciec/docname/fs"
	"github.com/fwojciec/docname/gemini"
	"github.com/fwojciec/docname/goquery"
	"github.com/fwojciec/docname/htmltomarkdown"
	"github.com/fwojciec/docname/openai"
	docslog "github.com/fwojciec/docname/slog"
	"github.com/fwojciec/docname/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the journal.
	DB *sqlite.DB

	// Generator replaces the configured provider when set. Used for
	// end-to-end testing.
	Generator docname.Generator

	// Journal service, available after Run() opens the database.
	Journal docname.JournalService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docname"),
		kong.Description("Rename documents after what they contain."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docname --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.Extractor = docslog.NewLoggingExtractor(NewRegistry(newConverter(cli.EpubFormat)), logger)
	if cmd == "extract" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCNAME_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Journal = sqlite.NewJournalService(m.DB)
	deps.Journal = m.Journal
	deps.Undoer = &batch.Undoer{
		Journal: m.Journal,
		Move:    fs.Move,
		Exists:  fs.Exists,
	}

	if cmd == "run" {
		driver, err := m.newDriver(ctx, &cli.Run, deps, logger, stderr)
		if err != nil {
			return err
		}
		deps.Driver = driver
	}

	return kongCtx.Run(deps)
}

// newDriver wires the batch driver for the run command.
func (m *Main) newDriver(ctx context.Context, c *RunCmd, deps *Dependencies, logger *slog.Logger, stderr io.Writer) (*batch.Driver, error) {
	gen, model := m.Generator, "test"
	if gen == nil {
		var err error
		gen, model, err = newGenerator(ctx, c, stderr)
		if err != nil {
			return nil, err
		}
	}

	driver := &batch.Driver{
		List:       fs.ListFiles,
		Extractor:  deps.Extractor,
		Generator:  docslog.NewLoggingGenerator(gen, model, logger),
		Renamer:    docslog.NewLoggingRenamer(fs.NewRenamer(), logger),
		Categories: docname.ParseCategories(c.Categories),
		Journal:    deps.Journal,
		Model:      model,
		Timeout:    c.Timeout,
		RPS:        c.RPS,
		KeepGoing:  c.KeepGoing,
		DryRun:     c.DryRun,
	}

	if c.SkipRenamed && !c.DryRun {
		index, err := bloom.NewIndex(ctx, deps.Journal)
		if err != nil {
			return nil, fmt.Errorf("failed to load journal: %w", err)
		}
		driver.Index = index
	}

	return driver, nil
}

// newGenerator connects to the configured provider and returns the
// generator along with the model name it uses.
func newGenerator(ctx context.Context, c *RunCmd, stderr io.Writer) (docname.Generator, string, error) {
	switch c.Provider {
	case ProviderGemini:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, "", fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, "", fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		g := gemini.NewGenerator(client, c.Model)
		return g, g.Model(), nil

	case ProviderOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" && c.BaseURL == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set")
			return nil, "", fmt.Errorf("OPENAI_API_KEY not set")
		}
		model := c.Model
		if model == "" {
			model = openai.OpenAIModel
		}
		return openai.NewGenerator(openai.NewClient(apiKey, c.BaseURL), model), model, nil

	default:
		baseURL := c.BaseURL
		if baseURL == "" {
			baseURL = openai.OllamaBaseURL
		}
		model := c.Model
		if model == "" {
			model = openai.OllamaModel
		}
		// Ollama ignores the key but the client sends one.
		return openai.NewGenerator(openai.NewClient("ollama", baseURL), model), model, nil
	}
}

// newConverter returns the HTML converter for EPUB chapters, or nil to keep
// raw markup.
func newConverter(format string) docname.Converter {
	switch format {
	case EpubText:
		return goquery.NewTextConverter()
	case EpubRaw:
		return nil
	default:
		return htmltomarkdown.NewConverter()
	}
}

func defaultDBPath() string {
	if path := os.Getenv("DOCNAME_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docname.db"
	}
	dir := filepath.Join(home, ".docname")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docname.db")
}
