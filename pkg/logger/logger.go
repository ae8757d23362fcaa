package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env   string // development -> consola legible; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado. En development usa salida legible; en production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug inicia un evento de log en nivel debug.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }

// Info inicia un evento de log en nivel info.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Warn inicia un evento de log en nivel warn.
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error inicia un evento de log en nivel error.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal inicia un evento de log en nivel fatal (termina el proceso).
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
