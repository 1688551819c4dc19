package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	ModelPath string        `yaml:"model_path"`
	Language  string        `yaml:"language"`
	Hotkey    HotkeyConfig  `yaml:"hotkey"`
	Audio     AudioConfig   `yaml:"audio"`
	Chunk     ChunkConfig   `yaml:"chunk"`
	Deliver   DeliverConfig `yaml:"deliver"`
	Store     StoreConfig   `yaml:"store"`
	LogLevel  string        `yaml:"log_level"`
}

// HotkeyConfig holds hotkey-related settings.
type HotkeyConfig struct {
	Keys []string `yaml:"keys"`
	Mode string   `yaml:"mode"` // "hold" or "toggle"
}

// AudioConfig holds audio capture settings.
type AudioConfig struct {
	SampleRate uint32 `yaml:"sample_rate"`
	Channels   uint32 `yaml:"channels"`
}

// ChunkConfig controls the incremental transcription schedule.
// While recording, a window ending at the newest captured sample is
// transcribed every Seconds, re-including OverlapSeconds of already
// transcribed audio so words split at a chunk edge are re-decoded
// with full context.
type ChunkConfig struct {
	Seconds        float64 `yaml:"seconds"`
	OverlapSeconds float64 `yaml:"overlap_seconds"`
	MinSeconds     float64 `yaml:"min_seconds"`
}

// DeliverConfig holds final text delivery settings.
type DeliverConfig struct {
	Method    string `yaml:"method"`     // "paste" or "type"
	SendEnter bool   `yaml:"send_enter"` // tap Enter after delivering
}

// StoreConfig holds transcript persistence settings.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dictate")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// DefaultDataDir returns the default data directory for models and transcripts.
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dictate")
}

// DefaultModelsDir returns the default directory for downloaded models.
func DefaultModelsDir() string {
	return filepath.Join(DefaultDataDir(), "models")
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		ModelPath: filepath.Join(DefaultModelsDir(), "ggml-base.en.bin"),
		Language:  "en",
		Hotkey: HotkeyConfig{
			Keys: []string{"ctrl", "shift", "r"},
			Mode: "hold",
		},
		Audio: AudioConfig{
			SampleRate: 16000,
			Channels:   1,
		},
		Chunk: ChunkConfig{
			Seconds:        5.0,
			OverlapSeconds: 1.5,
			MinSeconds:     0.3,
		},
		Deliver: DeliverConfig{
			Method: "paste",
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    filepath.Join(DefaultDataDir(), "transcripts.db"),
		},
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file. Missing fields are filled
// with defaults. Tilde (~) in paths is expanded to the user's home directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ModelPath = expandTilde(cfg.ModelPath)
	cfg.Store.Path = expandTilde(cfg.Store.Path)

	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("model_path must not be empty")
	}

	if len(c.Hotkey.Keys) == 0 {
		return fmt.Errorf("hotkey.keys must not be empty")
	}

	switch c.Hotkey.Mode {
	case "hold", "toggle":
	default:
		return fmt.Errorf("hotkey.mode must be \"hold\" or \"toggle\", got %q", c.Hotkey.Mode)
	}

	if c.Audio.SampleRate == 0 {
		return fmt.Errorf("audio.sample_rate must be > 0")
	}

	if c.Audio.Channels == 0 {
		return fmt.Errorf("audio.channels must be > 0")
	}

	if c.Chunk.Seconds <= 0 {
		return fmt.Errorf("chunk.seconds must be > 0")
	}

	if c.Chunk.OverlapSeconds < 0 || c.Chunk.OverlapSeconds >= c.Chunk.Seconds {
		return fmt.Errorf("chunk.overlap_seconds must be in [0, chunk.seconds), got %g", c.Chunk.OverlapSeconds)
	}

	if c.Chunk.MinSeconds < 0 {
		return fmt.Errorf("chunk.min_seconds must be >= 0")
	}

	switch c.Deliver.Method {
	case "type", "paste":
	default:
		return fmt.Errorf("deliver.method must be \"type\" or \"paste\", got %q", c.Deliver.Method)
	}

	if c.Store.Enabled && c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty when store.enabled is true")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	return nil
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
