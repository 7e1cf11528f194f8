package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	envLogLevel     = "SUMMARIZER_LOG_LEVEL"
	envFormat       = "SUMMARIZER_FORMAT"
	envLexiconCheck = "SUMMARIZER_LEXICON_CHECK"
	envHTMLTitle    = "SUMMARIZER_HTML_TITLE"

	DefaultHTMLTitle = "Chat Log Analysis"
)

// Settings are the environment-level defaults. Command-line flags override them.
type Settings struct {
	LogLevel     slog.Level
	Format       string
	LexiconCheck bool
	HTMLTitle    string
}

func FromEnv() Settings {
	s := Settings{
		LogLevel:  slog.LevelInfo,
		HTMLTitle: DefaultHTMLTitle,
	}

	if raw := strings.TrimSpace(os.Getenv(envLogLevel)); raw != "" {
		if err := s.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			slog.Warn("[Config] Invalid log level, using info",
				slog.String("value", raw))
			s.LogLevel = slog.LevelInfo
		}
	}

	s.Format = strings.ToLower(strings.TrimSpace(os.Getenv(envFormat)))

	if raw := strings.TrimSpace(os.Getenv(envLexiconCheck)); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			slog.Warn("[Config] Invalid lexicon check flag, leaving it off",
				slog.String("value", raw))
		}
		s.LexiconCheck = enabled
	}

	if title := strings.TrimSpace(os.Getenv(envHTMLTitle)); title != "" {
		s.HTMLTitle = title
	}

	return s
}
