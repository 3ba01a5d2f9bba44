package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configDir = ".linkedin-pulse"

// Embedded configuration files
//
//go:embed config/settings.yaml
var defaultSettings string

//go:embed config/report-template.txt
var defaultReportTemplate string

//go:embed config/sentiment-output-schema.json
var sentimentSchema string

// Thresholds are the polarity bands used to map a continuous score to a
// Sentiment. A score above Positive classifies positive, below Negative
// classifies negative, anything in between is neutral. These are explicit
// configuration, never inherited from the scoring library.
type Thresholds struct {
	Positive float64 `yaml:"positive"`
	Negative float64 `yaml:"negative"`
}

// ScorerSettings configures the optional LLM scorer.
type ScorerSettings struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// Settings represents the YAML configuration structure.
type Settings struct {
	OutputDirectory  string         `yaml:"output_directory"`
	LoadPauseSeconds int            `yaml:"load_pause_seconds"`
	MaxNoNewPosts    int            `yaml:"max_no_new_posts"`
	Thresholds       Thresholds     `yaml:"thresholds"`
	Scorer           ScorerSettings `yaml:"scorer"`
}

// loadSettings loads settings from the default location, falling back to the
// embedded defaults when no settings file exists yet.
func loadSettings() (*Settings, error) {
	data, err := os.ReadFile(getConfigPath("settings.yaml"))
	if err != nil {
		data = []byte(defaultSettings)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	if settings.OutputDirectory == "" {
		settings.OutputDirectory = "data"
	}
	if settings.LoadPauseSeconds <= 0 {
		settings.LoadPauseSeconds = 4
	}
	if settings.MaxNoNewPosts <= 0 {
		settings.MaxNoNewPosts = 50
	}
	if settings.Thresholds.Positive < settings.Thresholds.Negative {
		log.Printf("Warning: thresholds.positive %.3f is below thresholds.negative %.3f, swapping",
			settings.Thresholds.Positive, settings.Thresholds.Negative)
		settings.Thresholds.Positive, settings.Thresholds.Negative =
			settings.Thresholds.Negative, settings.Thresholds.Positive
	}

	return &settings, nil
}

// getConfigPath returns the path to a config file in the .linkedin-pulse directory.
func getConfigPath(filename string) string {
	return filepath.Join(configDir, filename)
}

// ensureConfigExists creates the config directory and default settings file
// on first run so users have something to customize.
func ensureConfigExists() error {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	settingsPath := getConfigPath("settings.yaml")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := os.WriteFile(settingsPath, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("writing default settings: %w", err)
		}
	}

	return nil
}
