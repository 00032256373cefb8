package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the process-global logger. Debug mode switches to a
// human-readable console writer; production stays on JSON for log shipping.
func Init(serviceName string, debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "timestamp"
	zerolog.MessageFieldName = "message"

	level := zerolog.InfoLevel
	var out = zerolog.New(os.Stdout)
	if debug {
		level = zerolog.DebugLevel
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log.Logger = out.
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// With returns a child logger tagged with a component name.
func With(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
