package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Engine *crawl.Engine
	Filter docgrab.RelevanceFilter
	Writer docgrab.DocumentWriter

	// Tokens is optional; when set the output document's size in tokens is
	// reported after writing.
	Tokens docgrab.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" optional:"" help:"Documentation URL (prompted for when omitted)"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Output      string        `short:"o" default:"." help:"Directory the document is written to"`
	Provider    string        `short:"p" help:"Link filter provider: openai or gemini (env DOCGRAB_PROVIDER, default openai)"`
	Model       string        `short:"m" help:"Model used by the link filter (env DOCGRAB_MODEL)"`
	Direct      bool          `help:"Fetch pages directly and extract content locally instead of using the reader proxy"`
	Render      bool          `help:"With --direct, render pages in headless Chrome before extraction"`
	Timeout     time.Duration `default:"10s" help:"Per-page fetch timeout"`
	Tokens      bool          `help:"Report the estimated token count of the written document"`
	Verbose     bool          `short:"v" help:"Write structured debug logs to stderr"`
	EnvFile     string        `name:"env-file" default:".env" help:"Optional dotenv file with API keys"`
}

// ScrapeCmd bundles the documentation reachable from one seed page.
type ScrapeCmd struct {
	URL    string
	Output string
}
