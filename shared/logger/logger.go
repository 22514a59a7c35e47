package logger

import (
	"io"
	"os"
	"time"

	"luna/config"
	"luna/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// InitLogger writes structured JSON to stdout at trace level until SetLogLevel
// narrows it.
func InitLogger() {
	Configure(os.Stdout, false)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

// Configure points the global logger at out. Console output is meant for a
// developer's terminal.
func Configure(out io.Writer, console bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Stack().Err(errors.WithStack(err)).Msg("query failed")
}

// SetLogLevel applies LOG_LEVEL, defaulting to info, and switches to console
// output in development.
func SetLogLevel(config *config.Config) {
	if config.Server.Env == constant.ServerEnvDevelopment {
		Configure(os.Stdout, true)
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	log.Debug().Str("level", level.String()).Msg("Log level set")
}
