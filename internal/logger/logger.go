package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init sets up the global logger. Text on stderr keeps command output clean
// for piping while still surfacing swallowed errors.
func Init(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func init() {
	// Default until the root command parses --verbose.
	Init(false)
}
