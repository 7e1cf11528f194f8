package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// InitLogger installs a tint handler on stderr as the default logger. Stdout
// is left for reports.
func InitLogger(level slog.Level) {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level <= slog.LevelDebug,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	slog.SetDefault(slog.New(handler))
}
