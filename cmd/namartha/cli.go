package main

import (
	"context"
	"io"

	"github.com/skaranam/namartha"
	"github.com/skaranam/namartha/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Entries     namartha.EntryService
	Annotations namartha.AnnotationService
	Fetcher     namartha.Fetcher
	Parser      namartha.SourceParser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log service operations to stderr"`

	Annotate     AnnotateCmd     `cmd:"" help:"Annotate a verse text with commentary from glossary files"`
	Extract      ExtractCmd      `cmd:"" help:"Extract structured entries from a name-corpus markdown file"`
	Audit        AuditCmd        `cmd:"" help:"Report data-quality findings for a name corpus"`
	List         ListCmd         `cmd:"" help:"List stored entries"`
	ImportSource ImportSourceCmd `cmd:"" name:"import-source" help:"Fetch a commentary page and save it as a glossary file"`
}

// AnnotateCmd is the "annotate" subcommand.
type AnnotateCmd struct {
	Verses      string   `arg:"" help:"Path to the verse text file"`
	Source      []string `short:"s" required:"" help:"Glossary JSON file (repeatable)"`
	Out         string   `short:"o" help:"Also write annotations to a JSON file"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent line limit"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Corpus string `arg:"" help:"Path to the name-corpus markdown file"`
	Out    string `short:"o" help:"Also write entries to a JSON file"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	Corpus string `arg:"" help:"Path to the name-corpus markdown file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Number *int   `short:"n" help:"Show only the entry with this number"`
	Name   string `help:"Show only the entry with this Devanagari name"`
	Full   bool   `help:"Show commentaries for each entry"`
}

// ImportSourceCmd is the "import-source" subcommand.
type ImportSourceCmd struct {
	URL  string  `arg:"" help:"Commentary page URL"`
	Name string  `arg:"" help:"Source name"`
	Out  string  `short:"o" help:"Output glossary file (defaults to <name>.json)"`
	RPS  float64 `default:"1" help:"Request rate limit in requests per second"`
}
