package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// Config holds the CLI's persisted options (§4.11 "Config").
type Config struct {
	DefaultConfig string `json:"default_config,omitempty"` //nolint:tagliatelle
	DictDir       string `json:"dict_dir,omitempty"`       //nolint:tagliatelle
	Punctuation   bool   `json:"punctuation,omitempty"`
}

// ConfigFileName is the project-local config file name, mirroring the
// teacher's .tk.json convention.
const ConfigFileName = ".zhconv.json"

// DefaultCLIConfig returns the built-in defaults (§4.11).
func DefaultCLIConfig() Config {
	return Config{DefaultConfig: "s2t"}
}

var errConfigInvalid = errors.New("invalid config file")

// LoadConfig loads configuration with the following precedence (highest
// wins): built-in defaults, the global user config, the project config
// (.zhconv.json), an explicit --config file, then CLI flag overrides
// (applied by the caller after LoadConfig returns). Punctuation is the
// exception among the file layers: any file can turn it on, but a later
// file's false does not turn it off; only the --punctuation flag can.
func LoadConfig(workDir, explicitPath string, env []string) (Config, error) {
	cfg := DefaultCLIConfig()

	if globalPath := globalConfigPath(env); globalPath != "" {
		overlay, ok, err := loadConfigFile(globalPath, false)
		if err != nil {
			return Config{}, err
		}
		if ok {
			cfg = merge(cfg, overlay)
		}
	}

	projectPath := filepath.Join(workDir, ConfigFileName)
	overlay, ok, err := loadConfigFile(projectPath, false)
	if err != nil {
		return Config{}, err
	}
	if ok {
		cfg = merge(cfg, overlay)
	}

	if explicitPath != "" {
		overlay, _, err := loadConfigFile(explicitPath, true)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(cfg, overlay)
	}

	return cfg, nil
}

func globalConfigPath(env []string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "XDG_CONFIG_HOME="); ok {
			return filepath.Join(after, "zhconv", "config.json")
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zhconv", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "zhconv", "config.json")
}

// loadConfigFile reads and parses a HuJSON config file. If mustExist is
// false, a missing file returns (_, false, nil).
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-provided path
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("%w: cannot read %s: %w", errConfigInvalid, path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w: %s: %w", errConfigInvalid, path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("%w: %s: %w", errConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func merge(base, overlay Config) Config {
	if overlay.DefaultConfig != "" {
		base.DefaultConfig = overlay.DefaultConfig
	}
	if overlay.DictDir != "" {
		base.DictDir = overlay.DictDir
	}
	base.Punctuation = base.Punctuation || overlay.Punctuation
	return base
}
