// Package logging sets up the zerolog logger shared by the server.
//
// Output always goes to stderr: with the stdio transport, stdout carries
// the MCP protocol stream and any stray byte there corrupts it.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a console logger writing to w (stderr when nil). It touches
// no process-wide state; see Install.
func New(w io.Writer, debug bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "notebare-facts").
		Logger()

	return logger
}

// Install makes logger the global logger and the fallback returned by
// FromCtx for contexts that carry none. Call it once, at startup.
func Install(logger zerolog.Logger) {
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromCtx returns the logger attached to ctx, falling back to the
// logger set by Install (or a disabled logger when none was).
func FromCtx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
