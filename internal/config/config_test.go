package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.History.MaxDepth != 100 {
		t.Errorf("expected history depth 100, got %d", cfg.History.MaxDepth)
	}
	if !cfg.Script.StopOnError {
		t.Error("expected stop_on_error to be true by default")
	}
	if !cfg.Script.Color {
		t.Error("expected color to be true by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
logging:
  level: "debug"
  log_file: "mdlx.log"

history:
  max_depth: 8

script:
  stop_on_error: false
  color: false
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := &Config{
		Logging: LoggingConfig{Level: "debug", LogFile: "mdlx.log"},
		History: HistoryConfig{MaxDepth: 8},
		Script:  ScriptConfig{StopOnError: false, Color: false},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("history:\n  max_depth: 3\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.History.MaxDepth != 3 {
		t.Errorf("expected history depth 3, got %d", cfg.History.MaxDepth)
	}
	// Untouched sections keep their defaults.
	if cfg.Logging.Level != "info" || !cfg.Script.Color {
		t.Errorf("defaults were overwritten: %+v", cfg)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
history:
  max_depth: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileNegativeDepth(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("history:\n  max_depth: -2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	err := loadFromFile(Default(), configPath)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if filepath.Base(dir) != "mdlx" {
		t.Errorf("ConfigDir should end in mdlx, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("MDLX_CONFIG", "")

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("history:\n  max_depth: 5\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestFindConfigFileEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(configPath, []byte("history:\n  max_depth: 5\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	t.Setenv("MDLX_CONFIG", configPath)

	if got := findConfigFile(); got != configPath {
		t.Errorf("expected %s, got %s", configPath, got)
	}
}

func TestSaveToRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.History.MaxDepth = -1
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := cfg.SaveTo(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "history depth flag",
			setup: func() { *flagHistoryDepth = 0 },
			verify: func(cfg *Config) {
				if cfg.History.MaxDepth != 0 {
					t.Errorf("expected unbounded history, got %d", cfg.History.MaxDepth)
				}
			},
			teardown: func() { *flagHistoryDepth = -1 },
		},
		{
			name:  "unset history depth keeps default",
			setup: func() {},
			verify: func(cfg *Config) {
				if cfg.History.MaxDepth != 100 {
					t.Errorf("expected default depth 100, got %d", cfg.History.MaxDepth)
				}
			},
			teardown: func() {},
		},
		{
			name:  "no-color flag",
			setup: func() { *flagNoColor = true },
			verify: func(cfg *Config) {
				if cfg.Script.Color {
					t.Error("expected color to be disabled")
				}
			},
			teardown: func() { *flagNoColor = false },
		},
		{
			name:  "keep-going flag",
			setup: func() { *flagKeepGoing = true },
			verify: func(cfg *Config) {
				if cfg.Script.StopOnError {
					t.Error("expected stop_on_error to be false")
				}
			},
			teardown: func() { *flagKeepGoing = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
history:
  max_depth: 20
logging:
  level: warn
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagHistoryDepth = 4
	defer func() {
		*flagConfig = ""
		*flagHistoryDepth = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Depth comes from the flag, level from the file.
	if cfg.History.MaxDepth != 4 {
		t.Errorf("expected depth 4 from flag, got %d", cfg.History.MaxDepth)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn from file, got %s", cfg.Logging.Level)
	}
	if cfg.Path != configPath {
		t.Errorf("expected Path %s, got %s", configPath, cfg.Path)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.History.MaxDepth = 12
	cfg.Script.Color = false
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}
