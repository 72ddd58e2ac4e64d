package config

import (
	"os"
	"path/filepath"
	"testing"

	boolelog "github.com/msto63/boole/foundation/core/log"
)

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// General defaults
	if cfg.General.Name != "boole" {
		t.Errorf("General.Name = %v, want boole", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}

	// Log defaults
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %v, want warn", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %v, want text", cfg.Log.Format)
	}

	// Solve defaults
	if cfg.Solve.MaxVariables != 25 {
		t.Errorf("Solve.MaxVariables = %v, want 25", cfg.Solve.MaxVariables)
	}
	if cfg.Solve.PrintAST {
		t.Error("Solve.PrintAST = true, want false")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() config failed validation: %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/boole.toml")
	if err == nil {
		t.Error("Load() expected error for non-existent file")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	// Create temp config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "boole.toml")

	configContent := `
[general]
name = "boole-test"
environment = "test"

[log]
level = "debug"
format = "json"

[solve]
max_variables = 10
print_ast = true
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "boole-test" {
		t.Errorf("General.Name = %v, want boole-test", cfg.General.Name)
	}
	if cfg.General.Environment != "test" {
		t.Errorf("General.Environment = %v, want test", cfg.General.Environment)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %v, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %v, want json", cfg.Log.Format)
	}
	if cfg.Solve.MaxVariables != 10 {
		t.Errorf("Solve.MaxVariables = %v, want 10", cfg.Solve.MaxVariables)
	}
	if !cfg.Solve.PrintAST {
		t.Error("Solve.PrintAST = false, want true")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "boole.toml")

	configContent := `
[log]
level = "info"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %v, want info", cfg.Log.Level)
	}

	// Check defaults were applied for missing values
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %v, want text (default)", cfg.Log.Format)
	}
	if cfg.Solve.MaxVariables != 25 {
		t.Errorf("Solve.MaxVariables = %v, want 25 (default)", cfg.Solve.MaxVariables)
	}
	if cfg.General.Name != "boole" {
		t.Errorf("General.Name = %v, want boole (default)", cfg.General.Name)
	}
}

func TestLoad_YAMLConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "boole.yaml")

	configContent := `
log:
  level: warn
solve:
  max_variables: 30
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %v, want warn", cfg.Log.Level)
	}
	if cfg.Solve.MaxVariables != 30 {
		t.Errorf("Solve.MaxVariables = %v, want 30", cfg.Solve.MaxVariables)
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "boole.toml")

	configContent := `
[log]
level = "loud"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() expected error for invalid log level")
	}
}

func TestLoad_MistypedKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "max_variables as string",
			content: `
[solve]
max_variables = "many"
`,
		},
		{
			name: "max_variables below minimum",
			content: `
[solve]
max_variables = 0
`,
		},
		{
			name: "print_ast as string",
			content: `
[solve]
print_ast = "yes"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "boole.toml")

			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}

			if _, err := Load(configPath); err == nil {
				t.Error("Load() expected error for mistyped key")
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("BOOLE_LOG_LEVEL", "trace")
	defer os.Unsetenv("BOOLE_LOG_LEVEL")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "boole.toml")

	configContent := `
[log]
level = "error"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "trace" {
		t.Errorf("Log.Level = %v, want trace (env override)", cfg.Log.Level)
	}
}

func TestLoadFromEnv_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.toml")

	configContent := `
[solve]
max_variables = 12
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv(EnvConfigPath, configPath)
	defer os.Unsetenv(EnvConfigPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Solve.MaxVariables != 12 {
		t.Errorf("Solve.MaxVariables = %v, want 12", cfg.Solve.MaxVariables)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	// Temporarily unset BOOLE_CONFIG
	original := os.Getenv(EnvConfigPath)
	os.Unsetenv(EnvConfigPath)
	defer func() {
		if original != "" {
			os.Setenv(EnvConfigPath, original)
		}
	}()

	// Change to a temp directory without config files; point HOME there
	// too so no user-level config is picked up
	originalWd, _ := os.Getwd()
	originalHome := os.Getenv("HOME")
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	os.Setenv("HOME", tmpDir)
	defer func() {
		os.Chdir(originalWd)
		os.Setenv("HOME", originalHome)
	}()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v, want defaults without error", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %v, want warn (default)", cfg.Log.Level)
	}
	if cfg.Solve.MaxVariables != 25 {
		t.Errorf("Solve.MaxVariables = %v, want 25 (default)", cfg.Solve.MaxVariables)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"all levels", func(c *Config) { c.Log.Level = "trace" }, false},
		{"json format", func(c *Config) { c.Log.Format = "json" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"negative max variables", func(c *Config) { c.Solve.MaxVariables = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_LoggerConfig(t *testing.T) {
	cfg := Default()

	lc := cfg.LoggerConfig(false)
	if lc.Level != boolelog.LevelWarn {
		t.Errorf("Level = %v, want %v", lc.Level, boolelog.LevelWarn)
	}
	if lc.Format != boolelog.FormatText {
		t.Errorf("Format = %v, want %v", lc.Format, boolelog.FormatText)
	}
	if lc.Name != "boole" {
		t.Errorf("Name = %v, want boole", lc.Name)
	}

	// Verbose forces debug regardless of the configured level
	lc = cfg.LoggerConfig(true)
	if lc.Level != boolelog.LevelDebug {
		t.Errorf("verbose Level = %v, want %v", lc.Level, boolelog.LevelDebug)
	}
}
