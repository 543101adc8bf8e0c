package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Output OutputConfig `yaml:"output"`
	Update UpdateConfig `yaml:"update"`
}

// StoreConfig holds store file settings.
type StoreConfig struct {
	// Path overrides the default store file location when non-empty.
	Path string `yaml:"path"`
}

// OutputConfig holds terminal output settings.
type OutputConfig struct {
	Theme string `yaml:"theme"` // markdown style: auto, dark, light, notty
}

// UpdateConfig holds self-update settings.
type UpdateConfig struct {
	Check bool `yaml:"check"` // look for new releases when the picker starts
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Output: OutputConfig{
			Theme: "auto",
		},
		Update: UpdateConfig{
			Check: true,
		},
	}
}

// Load reads the config from disk. If the file doesn't exist, returns defaults.
func Load() (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile(), data, 0o644)
}

// IsFirstRun returns true if the config file does not exist.
func IsFirstRun() bool {
	_, err := os.Stat(ConfigFile())
	return os.IsNotExist(err)
}
