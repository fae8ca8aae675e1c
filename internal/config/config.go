package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the gallery's runtime settings.
type Config struct {
	CatalogPath  string
	DownloadDir  string
	ToastTimeout time.Duration
	LogPath      string
	Debug        bool
}

const (
	defaultConfigPath   = "~/.config/gallery/config.toml"
	defaultDownloadDir  = "."
	defaultLogPath      = "~/.local/state/gallery/gallery.log"
	defaultToastTimeout = 2000 * time.Millisecond
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DownloadDir:  mustExpand(defaultDownloadDir),
		ToastTimeout: defaultToastTimeout,
		LogPath:      mustExpand(defaultLogPath),
	}
}

// Load locates and parses the gallery config, falling back to defaults when missing.
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
		CatalogPath    string `toml:"catalog_path"`
		DownloadDir    string `toml:"download_dir"`
		ToastTimeoutMS int    `toml:"toast_timeout_ms"`
		LogPath        string `toml:"log_path"`
		Debug          bool   `toml:"debug"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if catalog := strings.TrimSpace(raw.CatalogPath); catalog != "" {
		cfg.CatalogPath = mustExpand(catalog)
	}
	if dir := strings.TrimSpace(raw.DownloadDir); dir != "" {
		cfg.DownloadDir = mustExpand(dir)
	}
	if raw.ToastTimeoutMS > 0 {
		cfg.ToastTimeout = time.Duration(raw.ToastTimeoutMS) * time.Millisecond
	}
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	cfg.Debug = raw.Debug

	return cfg, nil
}

// Expand resolves a leading ~ and makes path absolute. Blank input stays blank.
func Expand(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	return mustExpand(path)
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
