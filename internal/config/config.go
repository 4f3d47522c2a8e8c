package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

const (
	minCardWidth = 80
	maxCardWidth = 1200
	minMaxHeight = 80
	maxMaxHeight = 2000

	configFilename = "config.toml"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{
		Theme:     "dracula",
		CardWidth: 280,
		MaxHeight: 400,
		Addr:      ":8501",
		Keys: InputConfig{
			NextGrid: "tab",
			PrevGrid: "shift+tab",
			Copy:     "y",
			Reload:   "r",
		},
	}
	cfg.Keys.InitControls()
	return cfg
}

// ApplyDefaults fills every unset field from DefaultConfig.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = defaults.Theme
	}
	if c.CardWidth == 0 {
		c.CardWidth = defaults.CardWidth
	}
	if c.MaxHeight == 0 {
		c.MaxHeight = defaults.MaxHeight
	}
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = defaults.Addr
	}
	if strings.TrimSpace(c.Keys.NextGrid) == "" {
		c.Keys.NextGrid = defaults.Keys.NextGrid
	}
	if strings.TrimSpace(c.Keys.PrevGrid) == "" {
		c.Keys.PrevGrid = defaults.Keys.PrevGrid
	}
	if strings.TrimSpace(c.Keys.Copy) == "" {
		c.Keys.Copy = defaults.Keys.Copy
	}
	if strings.TrimSpace(c.Keys.Reload) == "" {
		c.Keys.Reload = defaults.Keys.Reload
	}
	c.Keys.InitControls()
}

// ClampConfig keeps card geometry within usable bounds.
func ClampConfig(cfg *Config) {
	cfg.CardWidth = min(max(cfg.CardWidth, minCardWidth), maxCardWidth)
	cfg.MaxHeight = min(max(cfg.MaxHeight, minMaxHeight), maxMaxHeight)
}

// GetConfigDir resolves the per-user configuration directory.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.Join(err, herr)
		}
		return filepath.Join(home, ".datacard"), nil
	}
	return filepath.Join(configDir, "datacard"), nil
}

// LoadConfig reads config.toml from configDir, writing a default file on
// first run. DATACARD_THEME overrides the configured theme.
func LoadConfig(configDir string) (Config, error) {
	configPath := filepath.Join(configDir, configFilename)

	var cfg Config
	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cfg = DefaultConfig()
		if err := writeConfig(configPath, cfg); err != nil {
			zap.L().Warn("could not write default config", zap.String("path", configPath), zap.Error(err))
		}
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		zap.L().Debug("loading config", zap.String("path", configPath))
		if _, err := toml.Decode(os.ExpandEnv(string(data)), &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", configPath, err)
		}
	}

	if theme := strings.TrimSpace(os.Getenv("DATACARD_THEME")); theme != "" {
		cfg.Theme = theme
	}
	cfg.ApplyDefaults()
	ClampConfig(&cfg)
	return cfg, nil
}

func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
