package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/accountbook/internal/models"

	"gopkg.in/yaml.v3"
)

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join(".accountbook", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".accountbook", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadKeywordRules reads advisor keyword rules from a YAML file. An empty
// filename means no override and returns no rules.
func LoadKeywordRules(filename string) ([]models.KeywordRule, error) {
	if filename == "" {
		return nil, nil
	}

	path, err := FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("keyword rules file not found: %s", filename)
		}
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading keyword rules file: %w", err)
	}

	var cfg models.KeywordRulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing keyword rules file %s: %w", path, err)
	}

	for i, rule := range cfg.Rules {
		if !rule.Category.IsValid() {
			return nil, fmt.Errorf("keyword rule %d in %s has no valid category", i+1, path)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("keyword rule %d (%s) in %s has no keywords", i+1, rule.Category, path)
		}
	}

	return cfg.Rules, nil
}
