package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mlipski/siteql"
	"github.com/mlipski/siteql/gemini"
	sqlgoquery "github.com/mlipski/siteql/goquery"
	"github.com/mlipski/siteql/htmltomarkdown"
	sqlhttp "github.com/mlipski/siteql/http"
	"github.com/mlipski/siteql/rod"
	"github.com/mlipski/siteql/scrape"
	sqlslog "github.com/mlipski/siteql/slog"
	"github.com/mlipski/siteql/sqlite"
	"github.com/mlipski/siteql/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
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

	// Services exposed for end-to-end testing.
	RecordService siteql.RecordService
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteql"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteql --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parse result, never from the raw
	// argument list: global flags like -v may precede the command name.
	// Command() includes positional placeholders, e.g. "scrape <url>".
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	deps.Logger = newLogger(stderr, cli.Verbose)

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEQL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.DB = m.DB
	deps.Records = m.RecordService

	// Wire command-specific dependencies.
	if cmd == "scrape" {
		fetcher, err := m.newFetcher(cli, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		if cli.Verbose {
			fetcher = sqlslog.NewLoggingFetcher(fetcher, deps.Logger)
		}

		var extractor siteql.Extractor = sqlgoquery.NewExtractor()
		var converter siteql.Converter
		if cli.Scrape.Readability || cli.Scrape.Markdown {
			extractor = trafilatura.NewExtractor()
		}
		if cli.Scrape.Markdown {
			converter = htmltomarkdown.NewConverter()
		}

		deps.Scraper = &scrape.Scraper{
			Collector:  sqlgoquery.NewCollector(fetcher),
			Sitemaps:   sqlhttp.NewSitemapService(nil),
			Fetcher:    fetcher,
			Extractor:  extractor,
			Converter:  converter,
			Records:    m.RecordService,
			Limiter:    scrape.NewDomainLimiter(cli.Scrape.RPS),
			UseSitemap: cli.Scrape.Sitemap,
		}
	}

	if cmd == "ask" || cmd == "chat" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, sqlite.NewQueryExecutor(m.DB), defaultModel)
		if cli.Verbose {
			deps.Asker = sqlslog.NewLoggingAsker(deps.Asker, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher creates the page fetcher for a scrape run: plain HTTP by
// default, headless Chrome when --render is set.
func (m *Main) newFetcher(cli *CLI, stderr io.Writer) (siteql.Fetcher, error) {
	if !cli.Scrape.Render {
		return sqlhttp.NewFetcher(), nil
	}

	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// newLogger builds the logger for slog decorators. Without --verbose all
// log records are discarded.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

const defaultModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("SITEQL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "siteql.db"
	}
	dir := filepath.Join(home, ".siteql")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "siteql.db")
}
