package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/danmuck/aocctl/internal/catalog"
	"github.com/danmuck/aocctl/internal/config"
	"github.com/danmuck/aocctl/internal/cubegame"
)

// loadConfig reads --config, or config.DefaultPath when it exists, or falls
// back to defaults.
func (a *app) loadConfig() (config.Config, error) {
	known := catalog.Builtin(catalog.DefaultOptions()).Names()
	path := a.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = config.DefaultPath
	}
	return config.Load(path, known)
}

func solverOptions(cfg config.Config) catalog.Options {
	return catalog.Options{
		Bag: cubegame.Draw{Red: cfg.Bag.Red, Green: cfg.Bag.Green, Blue: cfg.Bag.Blue},
	}
}
