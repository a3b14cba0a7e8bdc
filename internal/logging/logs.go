package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.Nop()
	current.Store(&l)
}

// Logger returns the process logger. It is a no-op logger until Configure runs.
func Logger() zerolog.Logger {
	return *current.Load()
}

func Tracef(format string, args ...any) { current.Load().Trace().Msgf(format, args...) }
func Debugf(format string, args ...any) { current.Load().Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { current.Load().Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { current.Load().Warn().Msgf(format, args...) }
func Errorf(format string, args ...any) { current.Load().Error().Msgf(format, args...) }

// Logf writes a levelless entry; it is only suppressed when logging is disabled.
func Logf(format string, args ...any) { current.Load().Log().Msgf(format, args...) }
