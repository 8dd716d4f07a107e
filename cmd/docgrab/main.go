package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/crawl"
	"github.com/fwojciec/docgrab/fs"
	"github.com/fwojciec/docgrab/gemini"
	"github.com/fwojciec/docgrab/htmltomarkdown"
	dghttp "github.com/fwojciec/docgrab/http"
	"github.com/fwojciec/docgrab/jina"
	"github.com/fwojciec/docgrab/openai"
	"github.com/fwojciec/docgrab/readability"
	"github.com/fwojciec/docgrab/rod"
	dgslog "github.com/fwojciec/docgrab/slog"
	"github.com/fwojciec/docgrab/trafilatura"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up configuration from the environment.
	Getenv func(string) string

	// Endpoint overrides for end-to-end testing. Empty values use the
	// public services.
	ProxyEndpoint string
	OpenAIBaseURL string
	GeminiBaseURL string

	// RetryDelays overrides the backoff between fetch attempts.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docgrab"),
		kong.Description("Bundle a documentation site into a single text file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", docgrab.ErrorMessage(err))
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	fetcher, err := m.newFetcher(cfg, cli)
	if err != nil {
		if cli.Render {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		}
		return fmt.Errorf("failed to create fetcher: %w", err)
	}
	fetcher = dgslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	filter, err := m.newFilter(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: check your %s API key\n", cfg.Provider)
		return fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Engine: &crawl.Engine{
			Fetcher:     fetcher,
			Concurrency: cli.Concurrency,
			RetryDelays: m.RetryDelays,
			Logger: func(format string, args ...any) {
				logger.Debug(fmt.Sprintf(format, args...))
			},
		},
		Filter: dgslog.NewLoggingFilter(filter, logger),
		Writer: dgslog.NewLoggingWriter(fs.NewWriter(cli.Output), logger),
	}

	if cli.Tokens {
		counter, err := gemini.NewTokenCounter(gemini.DefaultTokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Tokens = counter
	}

	logger.Debug("starting",
		"provider", cfg.Provider,
		"direct", cli.Direct,
		"render", cli.Render,
		"concurrency", cli.Concurrency,
	)

	cmd := &ScrapeCmd{URL: cli.URL, Output: cli.Output}
	return cmd.Run(deps)
}

// loadConfig resolves settings from the environment, the optional env file
// and command-line flags, in increasing order of precedence. Variables
// already set in the environment win over the env file.
func (m *Main) loadConfig(cli *CLI) (docgrab.Config, error) {
	fileEnv, err := godotenv.Read(cli.EnvFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return docgrab.Config{}, docgrab.Errorf(docgrab.EINVALID, "read env file %s: %v", cli.EnvFile, err)
	}

	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := docgrab.NewConfig(func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	})

	if cli.Provider != "" {
		cfg.Provider = docgrab.Provider(cli.Provider)
	}
	if cli.Model != "" {
		cfg.Model = cli.Model
	}
	cfg.ProxyTimeout = cli.Timeout

	if cli.Render && !cli.Direct {
		return cfg, docgrab.Errorf(docgrab.EINVALID, "--render requires --direct")
	}
	if cli.Concurrency <= 0 {
		return cfg, docgrab.Errorf(docgrab.EINVALID, "concurrency must be positive")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (m *Main) newFetcher(cfg docgrab.Config, cli *CLI) (docgrab.Fetcher, error) {
	if !cli.Direct {
		opts := []jina.Option{jina.WithTimeout(cfg.ProxyTimeout)}
		if m.ProxyEndpoint != "" {
			opts = append(opts, jina.WithEndpoint(m.ProxyEndpoint))
		}
		return jina.NewFetcher(cfg.ProxyAPIKey, opts...), nil
	}

	var raw docgrab.Fetcher = dghttp.NewFetcher(dghttp.WithTimeout(cfg.ProxyTimeout))
	if cli.Render {
		browser, err := rod.NewFetcher(rod.WithTimeout(cfg.ProxyTimeout))
		if err != nil {
			return nil, err
		}
		raw = browser
	}

	extractor := FallbackExtractor{
		trafilatura.NewExtractor(),
		readability.NewExtractor(),
	}
	return NewDirectFetcher(raw, extractor, htmltomarkdown.NewConverter()), nil
}

func (m *Main) newFilter(ctx context.Context, cfg docgrab.Config) (docgrab.RelevanceFilter, error) {
	if cfg.Provider == docgrab.ProviderGemini {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      cfg.GeminiAPIKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: m.GeminiBaseURL},
		})
		if err != nil {
			return nil, err
		}
		return gemini.NewFilter(client, cfg.Model), nil
	}

	return openai.NewFilter(cfg.OpenAIAPIKey,
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(m.OpenAIBaseURL),
	), nil
}

// newLogger returns a logger tagged with a fresh run identifier. Logs are
// discarded unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	var handler slog.Handler = slog.DiscardHandler
	if verbose {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler).With("run", uuid.NewString())
}
