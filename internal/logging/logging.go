// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jkoskela/windgen/internal/conf"
)

// Init initializes the default logger from the settings. Output goes to
// stderr as human-readable text, or JSON when main.log.json is set, and
// is mirrored to a rotating log file when main.log.enabled is set.
func Init(settings *conf.Settings) {
	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if settings.Main.Log.Enabled {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   settings.Main.Log.Path,
			MaxSize:    settings.Main.Log.MaxSize,
			MaxBackups: 3,
		})
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if settings.Main.Log.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if settings.Main.Name != "" {
		logger = logger.With("name", settings.Main.Name)
	}
	slog.SetDefault(logger)
}
