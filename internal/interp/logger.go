package interp

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewLogger returns a logger writing human-readable records to f, colorized
// when f is a terminal.
func NewLogger(f *os.File, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(f, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(f.Fd()),
	}))
}

// NewJSONLogger returns a logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
