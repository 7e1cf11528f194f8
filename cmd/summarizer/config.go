package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spacesedan/chatlog/config"
	"github.com/spacesedan/chatlog/internal/parser"
)

type Config struct {
	InputPath    string
	OutputPath   string
	Format       string
	HTML         bool
	HTMLTitle    string
	LexiconCheck bool
}

func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("missing -in")
	}
	if c.HTML && strings.TrimSpace(c.HTMLTitle) == "" {
		return errors.New("-html-title must not be empty with -html")
	}
	return nil
}

// ResolvedFormat returns the explicit format, or one inferred from the input
// file extension. Unknown extensions pass through and are rejected by the parser.
func (c Config) ResolvedFormat() string {
	if c.Format != "" {
		return strings.ToLower(c.Format)
	}
	switch strings.ToLower(filepath.Ext(c.InputPath)) {
	case ".csv":
		return parser.FormatCSV
	case ".json":
		return parser.FormatJSON
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(c.InputPath)), ".")
}

func defaultConfig(settings config.Settings) Config {
	return Config{
		Format:       settings.Format,
		HTMLTitle:    settings.HTMLTitle,
		LexiconCheck: settings.LexiconCheck,
	}
}
