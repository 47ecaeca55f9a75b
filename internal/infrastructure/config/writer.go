package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultContentFile is the sample location written by WriteDefault.
const DefaultContentFile = "content/location_1.json"

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Survive Configuration

game:
  title: "Welcome to Survive: Can You Survive?"
  # seed: 42          # fix the random draws (or set SURVIVE_SEED); 0 = random
  max_turns: 10       # events to survive to win (or set SURVIVE_MAX_TURNS)
  # effects:
  #   pass: {strength: 2, intelligence: 2, agility: 2}
  #   partial_pass: {strength: 1, intelligence: 1, agility: 1}
  #   fail: {health: -20}

content:
  locations:
    - path: content/location_1.json
    # - name: barn
    #   path: content/barn.csv

journal:
  enabled: true
  path: journal.db    # or set SURVIVE_JOURNAL_PATH

log:
  level: warn         # debug, info, warn, error (or set SURVIVE_LOG_LEVEL)

# characters:
#   - {name: Sally, strength: 20, health: 90, agility: 15, intelligence: 20}
#   - {name: Kirk, strength: 20, health: 100, agility: 10, intelligence: 10}

# weapons:
#   - {name: Sword, damage: 10}
#   - {name: Crowbar, damage: 6}
`

// SampleContentJSON is a small location used by a fresh configuration.
const SampleContentJSON = `[
  {
    "prompt_text": "A heavy gate blocks the road out of the farm.",
    "primary_attribute": "Strength",
    "secondary_attribute": "Agility",
    "choices": ["Lift the gate", "Squeeze underneath"],
    "pass": {"message": "You lift the gate."},
    "partial_pass": {"message": "You squeeze under, scraping your back."},
    "fail": {"message": "The gate slams down on your arm."}
  },
  {
    "prompt_text": "A stranger at the gas station offers you a ride.",
    "primary_attribute": "Intelligence",
    "choices": ["Ask where he is headed", "Get in without a word"],
    "pass": {"message": "His story doesn't add up. You walk away."},
    "fail": {"message": "The doors lock behind you.", "effects": {"health": -30}}
  },
  {
    "prompt_text": "You hear an engine revving in the dark.",
    "primary_attribute": "Agility",
    "secondary_attribute": "Strength",
    "pass": {"message": "You dive into the cornfield and vanish."},
    "fail": {"message": "You trip over a root."}
  }
]
`

// WriteDefault creates the .survive directory and writes a default config
// file and a sample content file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	contentFile := filepath.Join(configDir, DefaultContentFile)
	if _, err := os.Stat(contentFile); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(contentFile), 0755); err != nil {
		return fmt.Errorf("creating content directory: %w", err)
	}
	if err := os.WriteFile(contentFile, []byte(SampleContentJSON), 0644); err != nil {
		return fmt.Errorf("writing content file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	configDir := ConfigDir(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ConfigFilePath(basePath), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a survive config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
