package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/marquee/internal/logger"
)

// ErrInvalidLogLevel is returned when log_level names an unknown level.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds marquee's runtime settings.
type Config struct {
	ExportDir   string
	LogFile     string
	LogLevel    string
	CatalogFile string // empty means the built-in catalog
}

const (
	defaultConfigPath = "~/.config/marquee/config.toml"
	defaultExportDir  = "~/Downloads"
	defaultLogFile    = "~/.local/share/marquee/marquee.log"
	defaultLogLevel   = "info"
)

// DefaultPath returns the config location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ExportDir: mustExpand(defaultExportDir),
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  defaultLogLevel,
	}
}

// Load locates and parses the marquee config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ExportDir   string `toml:"export_dir"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
		CatalogFile string `toml:"catalog_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		cfg.ExportDir = mustExpand(dir)
	}
	if file := strings.TrimSpace(raw.LogFile); file != "" {
		cfg.LogFile = mustExpand(file)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		if !logger.ValidLevel(level) {
			return Config{}, fmt.Errorf("log_level %q: %w", raw.LogLevel, ErrInvalidLogLevel)
		}
		cfg.LogLevel = level
	}
	if catalog := strings.TrimSpace(raw.CatalogFile); catalog != "" {
		cfg.CatalogFile = mustExpand(catalog)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
