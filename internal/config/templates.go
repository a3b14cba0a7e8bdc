package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const templateHeader = `# aocctl configuration for "aocctl all".
# Inputs default to <input_dir>/<exercise>.txt; [files] overrides per exercise.
`

// Template renders the default configuration as TOML.
func Template() (string, error) {
	cfg := Default()
	cfg.Files = map[string]string{"five": "almanac.txt"}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("render config template: %w", err)
	}
	return templateHeader + string(data), nil
}

func WriteTemplate(path string, overwrite bool) error {
	template, err := Template()
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}
