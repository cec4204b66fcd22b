package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"dario.cat/mergo"
	"github.com/PizzaHomicide/hibiki/internal/playlist"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Player  PlayerConfig  `yaml:"player,omitempty"`
	Library LibraryConfig `yaml:"library,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// PlayerConfig describes the external program each track is handed to
type PlayerConfig struct {
	// Program name or path.  Bare names are looked up on PATH.
	Path string `yaml:"path,omitempty"`
	// Extra arguments placed before the track path, split respecting quotes
	Args string `yaml:"args,omitempty"`
}

// LibraryConfig controls which directory entries make it into a playlist
type LibraryConfig struct {
	Extensions []string `yaml:"extensions,omitempty"`
}

// LoggingConfig contains log related settings
type LoggingConfig struct {
	Level    string `yaml:"level,omitempty"`
	FilePath string `yaml:"file_path,omitempty"`
}

// Load builds a configuration struct from multiple sources using these steps:
// 1. Create a base config with default values
// 2. If no config file exists on disk, save the default config to that location
// 3. Apply 'dynamic' properties, such as the OS-specific log file location
// 4. Load & merge the config file, overwriting any defaults with user-specified values
// 5. Apply environment variable overrides
func Load() (*Config, error) {
	cfg := Default()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to determine config file path: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		// Failing to write the default file is not fatal, the defaults are still usable
		_ = save(cfg, configPath)
	}

	applyDynamicDefaults(cfg)

	fileConfig, err := loadFromDisk(configPath)
	if err != nil {
		return nil, err
	}
	if err = mergo.Merge(cfg, fileConfig, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging config loaded from disk: %w", err)
	}

	applyEnvVarOverrides(cfg)

	return cfg, nil
}

// Default returns the built-in configuration, including the dynamic defaults.  It is what the program runs with
// when the config file cannot be loaded.
func Default() *Config {
	cfg := createBaseDefaultConfig()
	applyDynamicDefaults(cfg)
	return cfg
}

// applyDynamicDefaults sets runtime-determined values.  These are never written to the default config file.
func applyDynamicDefaults(cfg *Config) {
	cfg.Logging.FilePath = defaultLogFilePath()
}

// loadFromDisk loads the YAML config from disk and returns the unmarshalled Config
func loadFromDisk(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	return cfg, nil
}

func save(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return err
	}

	// Only persist the static part of the config
	persisted := *cfg
	persisted.Logging.FilePath = ""

	data, err := yaml.Marshal(&persisted)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// getConfigPath returns the path to the config file.  Uses the environment variable override if present, else tries
// to use OS config location defaults.
func getConfigPath() (string, error) {
	if configPath := os.Getenv("HIBIKI_CONFIG_PATH"); configPath != "" {
		return configPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "hibiki", "config.yaml"), nil
}

func createBaseDefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			Path: "mpv",
		},
		Library: LibraryConfig{
			Extensions: append([]string(nil), playlist.DefaultExtensions...),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// defaultLogFilePath returns the path to the log file.  Tries to use expected OS location defaults.
func defaultLogFilePath() string {
	fallback := filepath.Join(os.TempDir(), "hibiki.log")

	homedir, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}

	var basePath string
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			basePath = filepath.Join(appData, "hibiki", "logs")
		} else {
			basePath = filepath.Join(homedir, "AppData", "Local", "hibiki", "logs")
		}
	case "darwin":
		basePath = filepath.Join(homedir, "Library", "Logs", "hibiki")
	default:
		if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
			basePath = filepath.Join(xdgState, "hibiki", "logs")
		} else {
			basePath = filepath.Join(homedir, ".local", "state", "hibiki", "logs")
		}
	}

	return filepath.Join(basePath, "hibiki.log")
}
