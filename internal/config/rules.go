package config

import (
	"fmt"
	"os"

	"github.com/tatianab/trek/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadRules reads a YAML rules file over the defaults, so a file only has
// to name the values it changes. An empty path returns the defaults.
func LoadRules(path string) (models.Rules, error) {
	rules := models.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Rules{}, fmt.Errorf("read rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return models.Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return models.Rules{}, fmt.Errorf("rules %s: %w", path, err)
	}
	return rules, nil
}
