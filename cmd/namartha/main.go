package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/skaranam/namartha"
	"github.com/skaranam/namartha/goquery"
	"github.com/skaranam/namartha/htmltomarkdown"
	namhttp "github.com/skaranam/namartha/http"
	namslog "github.com/skaranam/namartha/slog"
	"github.com/skaranam/namartha/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	EntryService      namartha.EntryService
	AnnotationService namartha.AnnotationService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("namartha"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'namartha --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NAMARTHA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.EntryService = sqlite.NewEntryService(m.DB)
	m.AnnotationService = sqlite.NewAnnotationService(m.DB)
	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		m.EntryService = namslog.NewLoggingEntryService(m.EntryService, logger)
		m.AnnotationService = namslog.NewLoggingAnnotationService(m.AnnotationService, logger)
	}
	deps.DB = m.DB
	deps.Entries = m.EntryService
	deps.Annotations = m.AnnotationService

	// Wire command-specific dependencies based on command
	if cmd == "import-source" {
		fetcher := namhttp.NewFetcher(namhttp.WithRateLimit(cli.ImportSource.RPS))
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Parser = goquery.NewParser(htmltomarkdown.NewConverter())
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NAMARTHA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "namartha.db"
	}
	dir := filepath.Join(home, ".namartha")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "namartha.db")
}
