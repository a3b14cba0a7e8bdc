package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "AOCCTL_LOG_LEVEL"
	EnvLogTimestamp = "AOCCTL_LOG_TIMESTAMP"
	EnvLogNoColor   = "AOCCTL_LOG_NOCOLOR"
	EnvLogBypass    = "AOCCTL_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config describes how the process logger is built.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Bypass    bool
	Out       io.Writer
}

// envOverrides holds the optional environment knobs; nil means unset.
type envOverrides struct {
	Level     string `env:"AOCCTL_LOG_LEVEL"`
	Timestamp *bool  `env:"AOCCTL_LOG_TIMESTAMP"`
	NoColor   *bool  `env:"AOCCTL_LOG_NOCOLOR"`
	Bypass    *bool  `env:"AOCCTL_LOG_BYPASS"`
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		if err := applyEnvOverrides(&cfg); err != nil {
			Apply(cfg)
			Warnf("logging: ignoring env overrides err=%v", err)
			return
		}
		Apply(cfg)
	})
}

func defaultConfig(profile Profile) Config {
	cfg := Config{Out: os.Stderr}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
	default:
		cfg.Level = zerolog.InfoLevel
		cfg.Timestamp = true
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) error {
	var raw envOverrides
	if err := env.Parse(&raw); err != nil {
		return err
	}
	if lvl, ok := parseLevel(raw.Level); ok {
		cfg.Level = lvl
	}
	if raw.Timestamp != nil {
		cfg.Timestamp = *raw.Timestamp
	}
	if raw.NoColor != nil {
		cfg.NoColor = *raw.NoColor
	}
	if raw.Bypass != nil {
		cfg.Bypass = *raw.Bypass
	}
	return nil
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// Apply swaps the process logger for one built from cfg.
func Apply(cfg Config) {
	if cfg.Bypass {
		l := zerolog.Nop()
		current.Store(&l)
		return
	}
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		writer.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(writer).Level(cfg.Level).With().Str("app", "aocctl")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	l := ctx.Logger()
	current.Store(&l)
}
