package main

/*
summarizer analyzes customer chat logs and prints a step-by-step report.

Usage:
  go run ./cmd/summarizer analyze -in chats.csv
  go run ./cmd/summarizer analyze -in chats.json -html -out out/report.html
  cat chats.json | go run ./cmd/summarizer analyze -in - -format json
  go run ./cmd/summarizer demo -format csv
  go run ./cmd/summarizer greet "my name is Sam"
  go run ./cmd/summarizer schema

Environment (also read from config/envs/.env.$APP_ENV):
  SUMMARIZER_LOG_LEVEL      debug|info|warn|error (default info)
  SUMMARIZER_FORMAT         default input format when -format is not given
  SUMMARIZER_LEXICON_CHECK  add the VADER cross-check block (default false)
  SUMMARIZER_HTML_TITLE     page title for -html output
*/

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spacesedan/chatlog/config"
	"github.com/spacesedan/chatlog/internal/greeting"
	"github.com/spacesedan/chatlog/internal/logging"
	"github.com/spacesedan/chatlog/internal/report"
	"github.com/spacesedan/chatlog/internal/schema"
	"github.com/spacesedan/chatlog/internal/summarizer"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	settings := config.FromEnv()
	logging.InitLogger(settings.LogLevel)

	logger := slog.Default().With(slog.String("run_id", uuid.NewString()))
	os.Exit(run(os.Args[1:], settings, logger, os.Stdin, os.Stdout))
}

func run(args []string, settings config.Settings, logger *slog.Logger, stdin io.Reader, stdout io.Writer) int {
	if len(args) < 1 {
		printUsage(stdout)
		return exitUsage
	}

	command, rest := args[0], args[1:]
	var err error
	code := exitOK

	switch command {
	case "analyze":
		code, err = runAnalyzeCmd(rest, settings, logger, stdin, stdout)
	case "demo":
		code, err = runDemoCmd(rest, settings, logger, stdout)
	case "greet":
		_, err = fmt.Fprintln(stdout, greeting.Greet(strings.Join(rest, " ")))
	case "schema":
		err = runSchemaCmd(stdout)
	case "-h", "--help", "help":
		printUsage(stdout)
		return exitOK
	default:
		printUsage(stdout)
		err = fmt.Errorf("unknown command: %s", command)
		code = exitUsage
	}

	if err != nil {
		logger.Error("[Main] Command failed",
			slog.String("command", command),
			slog.String("error", err.Error()))
		if code == exitOK {
			code = exitUsage
		}
	}
	return code
}

func runAnalyzeCmd(args []string, settings config.Settings, logger *slog.Logger, stdin io.Reader, stdout io.Writer) (int, error) {
	cfg, err := parseAnalyzeFlags(flag.NewFlagSet("analyze", flag.ContinueOnError), args, settings)
	if err != nil {
		return exitUsage, err
	}
	if err := cfg.Validate(); err != nil {
		return exitUsage, err
	}

	raw, err := readInput(cfg.InputPath, stdin)
	if err != nil {
		return exitUsage, err
	}

	return analyze(cfg, string(raw), logger, stdout)
}

func runDemoCmd(args []string, settings config.Settings, logger *slog.Logger, stdout io.Writer) (int, error) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	format := fs.String("format", "json", "Which built-in sample to analyze: csv or json")
	lexicon := fs.Bool("lexicon", settings.LexiconCheck, "Add the VADER lexicon cross-check block")
	if err := fs.Parse(args); err != nil {
		return exitUsage, err
	}

	raw, ok := demoInputs[*format]
	if !ok {
		return exitUsage, fmt.Errorf("no demo data for format %q", *format)
	}

	cfg := defaultConfig(settings)
	cfg.InputPath = "demo." + *format
	cfg.Format = *format
	cfg.LexiconCheck = *lexicon
	return analyze(cfg, raw, logger, stdout)
}

func runSchemaCmd(stdout io.Writer) error {
	b, err := schema.InputSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(b))
	return err
}

func analyze(cfg Config, raw string, logger *slog.Logger, stdout io.Writer) (int, error) {
	format := cfg.ResolvedFormat()
	logger.Info("[Main] Analyzing chat log",
		slog.String("in", cfg.InputPath),
		slog.String("format", format))

	s := summarizer.New(
		summarizer.WithLexiconCheck(cfg.LexiconCheck),
		summarizer.WithLogger(logger),
	)
	text, analyzeErr := s.Analyze(raw, format)

	code := exitOK
	var inputErr *summarizer.InputError
	if errors.As(analyzeErr, &inputErr) {
		code = exitRejected
	}

	out := []byte(text)
	if cfg.HTML && code == exitOK {
		out = report.RenderHTML(text, cfg.HTMLTitle)
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	if err := writeOutput(cfg.OutputPath, out, stdout); err != nil {
		return exitUsage, err
	}
	return code, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return b, nil
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory for %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

func parseAnalyzeFlags(fs *flag.FlagSet, args []string, settings config.Settings) (Config, error) {
	cfg := defaultConfig(settings)

	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InputPath, "in", cfg.InputPath, "Path to the chat log, or - for stdin")
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "Write the report here instead of stdout")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Input format: csv or json (default: from the -in extension)")
	fs.BoolVar(&cfg.HTML, "html", cfg.HTML, "Render the report as an HTML page")
	fs.StringVar(&cfg.HTMLTitle, "html-title", cfg.HTMLTitle, "Page title for -html")
	fs.BoolVar(&cfg.LexiconCheck, "lexicon", cfg.LexiconCheck, "Add the VADER lexicon cross-check block")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s analyze [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.InputPath != "" && cfg.InputPath != "-" {
		cfg.InputPath = filepath.Clean(cfg.InputPath)
	}
	if cfg.OutputPath != "" {
		cfg.OutputPath = filepath.Clean(cfg.OutputPath)
	}
	return cfg, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  summarizer analyze -in chats.csv [-format csv|json] [-out report.md] [-html] [-lexicon]")
	fmt.Fprintln(w, "  summarizer demo [-format csv|json] [-lexicon]")
	fmt.Fprintln(w, "  summarizer greet <text>")
	fmt.Fprintln(w, "  summarizer schema")
}
