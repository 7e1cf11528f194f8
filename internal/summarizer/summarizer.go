package summarizer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/chatlog/internal/parser"
	"github.com/spacesedan/chatlog/internal/report"
	"github.com/spacesedan/chatlog/internal/validation"
)

// InputError carries the parse or field errors that stopped a run.
type InputError struct {
	Errs []error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input rejected with %d error(s)", len(e.Errs))
}

func (e *InputError) Unwrap() []error {
	return e.Errs
}

type Option func(*Summarizer)

// WithLexiconCheck adds the VADER cross-check block to every conversation.
func WithLexiconCheck(enabled bool) Option {
	return func(s *Summarizer) {
		s.opts.LexiconCheck = enabled
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Summarizer) {
		s.logger = logger
	}
}

type Summarizer struct {
	opts   report.Options
	logger *slog.Logger
}

func New(opts ...Option) *Summarizer {
	s := &Summarizer{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs the whole pipeline and returns either the full report or the
// ERROR lines that stopped it.
func (s *Summarizer) Process(raw, format string) string {
	out, _ := s.Analyze(raw, format)
	return out
}

// Analyze is Process for callers that need to tell a report from an error
// listing. The returned text is the same in both cases.
func (s *Summarizer) Analyze(raw, format string) (string, error) {
	start := time.Now()
	s.logger.Debug("[Summarizer] Parsing input",
		slog.String("format", format),
		slog.Int("bytes", len(raw)))

	records, errs := parser.Parse(raw, format)
	if len(errs) > 0 {
		s.logger.Warn("[Summarizer] Input rejected",
			slog.String("format", format),
			slog.Int("errors", len(errs)))
		return parser.FormatErrors(errs), &InputError{Errs: errs}
	}

	validationReport, conversations := validation.Validate(records)
	s.logger.Info("[Summarizer] Input validated",
		slog.Int("records", len(records)),
		slog.Int("conversations", conversations.Len()))

	analysis := report.Assemble(conversations, s.opts)

	s.logger.Info("[Summarizer] Report assembled",
		slog.Bool("lexicon_check", s.opts.LexiconCheck),
		slog.Duration("elapsed", time.Since(start)))

	return validationReport + analysis, nil
}
