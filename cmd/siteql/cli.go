package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mlipski/siteql"
	"github.com/mlipski/siteql/scrape"
	"github.com/mlipski/siteql/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Records siteql.RecordService
	Scraper *scrape.Scraper
	Asker   siteql.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape pages from a website into the database"`
	Records RecordsCmd `cmd:"" help:"List scraped records"`
	Clear   ClearCmd   `cmd:"" help:"Delete records by URL prefix, or all records"`
	Ask     AskCmd     `cmd:"" help:"Ask a one-off question about the scraped data"`
	Chat    ChatCmd    `cmd:"" help:"Start an interactive question session"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL         string  `arg:"" help:"Seed URL to scrape"`
	Pages       int     `short:"n" default:"5" help:"Number of pages to scrape (1-50)"`
	RPS         float64 `default:"1" help:"Requests per second to the target domain"`
	Render      bool    `help:"Render pages in a headless browser (for JavaScript sites)"`
	Readability bool    `help:"Extract main content only, dropping boilerplate"`
	Markdown    bool    `help:"Store content as Markdown (implies --readability)"`
	Sitemap     bool    `help:"Discover pages from the site's sitemap instead of seed page links"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Full  bool   `help:"Show full record content"`
	CSV   string `name:"csv" placeholder:"FILE" help:"Export records to a CSV file"`
	Limit int    `help:"Maximum number of records to show (0 = all)"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Prefix string `arg:"" optional:"" help:"URL prefix of records to delete"`
	All    bool   `help:"Delete every record instead of matching a prefix"`
	Force  bool   `help:"Confirm deletion"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the scraped data"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}
