package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Service string
	Level   string
	// File enables a rotating log file next to stdout.
	File   string
	Pretty bool
	// Out defaults to stdout.
	Out io.Writer
}

// New builds the service logger. An unknown level falls back to info.
func New(opts Options) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if opts.Out != nil {
		out = opts.Out
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), err
		}
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	service := opts.Service
	if service == "" {
		service = "streak-radar"
	}

	return zerolog.New(out).
		Level(level).
		With().
		Str("service", service).
		Timestamp().
		Logger(), nil
}
