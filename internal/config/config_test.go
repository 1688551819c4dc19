package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ModelPath == "" {
		t.Error("ModelPath should not be empty")
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want %q", cfg.Language, "en")
	}
	if cfg.Hotkey.Mode != "hold" {
		t.Errorf("Hotkey.Mode = %q, want %q", cfg.Hotkey.Mode, "hold")
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("Audio.SampleRate = %d, want 16000", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Channels != 1 {
		t.Errorf("Audio.Channels = %d, want 1", cfg.Audio.Channels)
	}
	if cfg.Chunk.Seconds != 5.0 {
		t.Errorf("Chunk.Seconds = %g, want 5.0", cfg.Chunk.Seconds)
	}
	if cfg.Chunk.OverlapSeconds != 1.5 {
		t.Errorf("Chunk.OverlapSeconds = %g, want 1.5", cfg.Chunk.OverlapSeconds)
	}
	if cfg.Chunk.MinSeconds != 0.3 {
		t.Errorf("Chunk.MinSeconds = %g, want 0.3", cfg.Chunk.MinSeconds)
	}
	if cfg.Deliver.Method != "paste" {
		t.Errorf("Deliver.Method = %q, want %q", cfg.Deliver.Method, "paste")
	}
	if !cfg.Store.Enabled {
		t.Error("Store.Enabled should default to true")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() config should validate, got: %v", err)
	}
}

func TestLoad(t *testing.T) {
	yamlContent := `
model_path: /tmp/test-model.bin
language: de
hotkey:
  keys: ["alt", "d"]
  mode: toggle
audio:
  sample_rate: 44100
  channels: 2
chunk:
  seconds: 4
  overlap_seconds: 1
  min_seconds: 0.5
deliver:
  method: type
  send_enter: true
store:
  enabled: false
log_level: debug
`
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ModelPath != "/tmp/test-model.bin" {
		t.Errorf("ModelPath = %q, want %q", cfg.ModelPath, "/tmp/test-model.bin")
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q, want %q", cfg.Language, "de")
	}
	if cfg.Hotkey.Mode != "toggle" {
		t.Errorf("Hotkey.Mode = %q, want %q", cfg.Hotkey.Mode, "toggle")
	}
	if len(cfg.Hotkey.Keys) != 2 || cfg.Hotkey.Keys[0] != "alt" || cfg.Hotkey.Keys[1] != "d" {
		t.Errorf("Hotkey.Keys = %v, want [alt d]", cfg.Hotkey.Keys)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Audio.SampleRate = %d, want 44100", cfg.Audio.SampleRate)
	}
	if cfg.Chunk.Seconds != 4 {
		t.Errorf("Chunk.Seconds = %g, want 4", cfg.Chunk.Seconds)
	}
	if cfg.Chunk.OverlapSeconds != 1 {
		t.Errorf("Chunk.OverlapSeconds = %g, want 1", cfg.Chunk.OverlapSeconds)
	}
	if cfg.Deliver.Method != "type" {
		t.Errorf("Deliver.Method = %q, want %q", cfg.Deliver.Method, "type")
	}
	if !cfg.Deliver.SendEnter {
		t.Error("Deliver.SendEnter = false, want true")
	}
	if cfg.Store.Enabled {
		t.Error("Store.Enabled = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	yamlContent := `
model_path: /tmp/model.bin
`
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Chunk.Seconds != 5.0 {
		t.Errorf("Chunk.Seconds = %g, want default 5.0", cfg.Chunk.Seconds)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want default %q", cfg.Language, "en")
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	yamlContent := `
model_path: ~/models/test.bin
store:
  path: ~/transcripts.db
`
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(home, "models/test.bin"); cfg.ModelPath != want {
		t.Errorf("ModelPath = %q, want %q", cfg.ModelPath, want)
	}
	if want := filepath.Join(home, "transcripts.db"); cfg.Store.Path != want {
		t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, want)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty model path",
			mutate:  func(c *Config) { c.ModelPath = "" },
			wantErr: "model_path",
		},
		{
			name:    "no hotkey keys",
			mutate:  func(c *Config) { c.Hotkey.Keys = nil },
			wantErr: "hotkey.keys",
		},
		{
			name:    "bad hotkey mode",
			mutate:  func(c *Config) { c.Hotkey.Mode = "tap" },
			wantErr: "hotkey.mode",
		},
		{
			name:    "zero sample rate",
			mutate:  func(c *Config) { c.Audio.SampleRate = 0 },
			wantErr: "audio.sample_rate",
		},
		{
			name:    "zero channels",
			mutate:  func(c *Config) { c.Audio.Channels = 0 },
			wantErr: "audio.channels",
		},
		{
			name:    "zero chunk seconds",
			mutate:  func(c *Config) { c.Chunk.Seconds = 0 },
			wantErr: "chunk.seconds",
		},
		{
			name:    "overlap not smaller than chunk",
			mutate:  func(c *Config) { c.Chunk.OverlapSeconds = 5.0 },
			wantErr: "chunk.overlap_seconds",
		},
		{
			name:    "negative overlap",
			mutate:  func(c *Config) { c.Chunk.OverlapSeconds = -1 },
			wantErr: "chunk.overlap_seconds",
		},
		{
			name:    "negative min seconds",
			mutate:  func(c *Config) { c.Chunk.MinSeconds = -0.1 },
			wantErr: "chunk.min_seconds",
		},
		{
			name:    "bad deliver method",
			mutate:  func(c *Config) { c.Deliver.Method = "telepathy" },
			wantErr: "deliver.method",
		},
		{
			name: "store enabled without path",
			mutate: func(c *Config) {
				c.Store.Enabled = true
				c.Store.Path = ""
			},
			wantErr: "store.path",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
