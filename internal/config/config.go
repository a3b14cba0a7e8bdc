package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("config: invalid")

const DefaultPath = "aocctl.toml"

// Config drives `aocctl all`.
type Config struct {
	InputDir    string            `toml:"input_dir"`
	Exercises   []string          `toml:"exercises"`
	Parallelism int               `toml:"parallelism"`
	MetricsFile string            `toml:"metrics_file"`
	Files       map[string]string `toml:"files"`
	Bag         BagConfig         `toml:"bag"`
}

// BagConfig is the cube bag the cube game checks draws against.
type BagConfig struct {
	Red   int `toml:"red"`
	Green int `toml:"green"`
	Blue  int `toml:"blue"`
}

func Default() Config {
	return Config{
		InputDir:    "inputs",
		Exercises:   []string{"one", "two", "three", "four", "five", "six", "seven"},
		Parallelism: 1,
		Files:       map[string]string{},
		Bag:         BagConfig{Red: 12, Green: 13, Blue: 14},
	}
}

// InputPath is the file an exercise reads: an explicit [files] entry, or
// <input_dir>/<exercise>.txt. Relative [files] entries resolve against input_dir.
func (c Config) InputPath(exercise string) string {
	if p, ok := c.Files[exercise]; ok && strings.TrimSpace(p) != "" {
		p = strings.TrimSpace(p)
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(c.InputDir, p)
	}
	return filepath.Join(c.InputDir, exercise+".txt")
}

// Load decodes path over Default and validates the result against known
// exercise names.
func Load(path string, known []string) (Config, error) {
	cfg := Default()

	// only keys present in the file override defaults
	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}

	if meta.IsDefined("input_dir") {
		cfg.InputDir = strings.TrimSpace(raw.InputDir)
	}
	if meta.IsDefined("exercises") {
		cfg.Exercises = normalizeNames(raw.Exercises)
	}
	if meta.IsDefined("parallelism") {
		cfg.Parallelism = raw.Parallelism
	}
	if meta.IsDefined("metrics_file") {
		cfg.MetricsFile = strings.TrimSpace(raw.MetricsFile)
	}
	if meta.IsDefined("files") {
		for name, p := range raw.Files {
			cfg.Files[strings.ToLower(strings.TrimSpace(name))] = p
		}
	}
	if meta.IsDefined("bag", "red") {
		cfg.Bag.Red = raw.Bag.Red
	}
	if meta.IsDefined("bag", "green") {
		cfg.Bag.Green = raw.Bag.Green
	}
	if meta.IsDefined("bag", "blue") {
		cfg.Bag.Blue = raw.Bag.Blue
	}

	if err := Validate(cfg, known); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config, known []string) error {
	if strings.TrimSpace(cfg.InputDir) == "" {
		return fmt.Errorf("%w: input_dir is required", ErrInvalidConfig)
	}
	if cfg.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalidConfig, cfg.Parallelism)
	}
	if cfg.Bag.Red < 0 || cfg.Bag.Green < 0 || cfg.Bag.Blue < 0 {
		return fmt.Errorf("%w: bag counts must not be negative", ErrInvalidConfig)
	}
	if len(known) == 0 {
		return nil
	}
	for _, name := range cfg.Exercises {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: unknown exercise %q", ErrInvalidConfig, name)
		}
	}
	for name := range cfg.Files {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: files entry for unknown exercise %q", ErrInvalidConfig, name)
		}
	}
	return nil
}

func normalizeNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, name := range in {
		v := strings.ToLower(strings.TrimSpace(name))
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
