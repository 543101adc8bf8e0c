package config

import (
	"os"
	"path/filepath"
)

// Dir returns the wwt configuration directory, <os-config-dir>/wwt
// (~/.config/wwt on Linux, ~/Library/Application Support/wwt on macOS,
// %AppData%\wwt on Windows). It can be overridden with the WWT_CONFIG_DIR
// environment variable.
func Dir() string {
	if d := os.Getenv("WWT_CONFIG_DIR"); d != "" {
		return d
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".config", "wwt")
	}
	return filepath.Join(base, "wwt")
}

// ConfigFile returns the path to the config.yaml file.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultStorePath returns the default store file location.
func DefaultStorePath() string {
	return filepath.Join(Dir(), "store.json")
}

// StorePath resolves the store file path: the WWT_STORE_PATH environment
// variable wins, then store.path from the config file, then the default.
func StorePath(cfg Config) string {
	if p := os.Getenv("WWT_STORE_PATH"); p != "" {
		return p
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path
	}
	return DefaultStorePath()
}
