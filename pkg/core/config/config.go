package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	booleconfig "github.com/msto63/boole/foundation/core/config"
	booleerror "github.com/msto63/boole/foundation/core/error"
	boolelog "github.com/msto63/boole/foundation/core/log"
)

const (
	// EnvPrefix is the prefix for environment variable overrides
	// (BOOLE_LOG_LEVEL overrides log.level, and so on)
	EnvPrefix = "BOOLE"

	// EnvConfigPath names the environment variable that points at an
	// explicit configuration file
	EnvConfigPath = "BOOLE_CONFIG"
)

// sourceRules constrain the raw configuration keys before they are
// copied into the typed structure, so that a mistyped file fails with
// a field-level message instead of a zero value.
var sourceRules = booleconfig.ValidationRules{
	"general.name":        {Type: "string"},
	"general.environment": {Type: "string"},
	"log.level":           {Type: "string"},
	"log.format":          {Type: "string"},
	"solve.max_variables": {Type: "int", Min: 1},
	"solve.print_ast":     {Type: "bool"},
}

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig
	Log     LogConfig
	Solve   SolveConfig
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string
	Environment string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string
}

// SolveConfig holds solver settings
type SolveConfig struct {
	// MaxVariables is the variable count above which a run logs a
	// warning about the size of the search space before proceeding
	MaxVariables int

	// PrintAST makes every run print the expression trees before solving
	PrintAST bool
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an explicit file path (TOML or YAML)
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	src, err := booleconfig.LoadWithOptions(path, booleconfig.LoadOptions{
		Format:    booleconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, err
	}

	return fromCheckedSource(src)
}

// LoadFromEnv loads configuration from the BOOLE_CONFIG environment variable
// or the default locations. A run without any configuration file is fine:
// the defaults are returned, with environment overrides still honored.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	src, err := booleconfig.Discover(booleconfig.DiscoveryOptions{
		Paths: []string{
			".",
			"./configs",
			filepath.Join(os.Getenv("HOME"), ".config", "boole"),
		},
		Filenames:  []string{"boole", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
		Required:   false,
	})
	if err != nil {
		return nil, err
	}

	return fromCheckedSource(src)
}

// fromCheckedSource validates the raw keys, builds the typed
// configuration, and validates the result
func fromCheckedSource(src *booleconfig.Config) (*Config, error) {
	if result := src.Validate(sourceRules); !result.Valid {
		err := booleerror.New(fmt.Sprintf("invalid configuration: %s", strings.Join(result.Errors, "; "))).
			WithCode(booleerror.CodeInvalidConfig).
			WithOperation("config.Load")
		if src.FilePath() != "" {
			err = err.WithDetail("file", src.FilePath())
		}
		return nil, err
	}

	cfg := fromSource(src)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fromSource fills the typed configuration from the generic loader
func fromSource(src *booleconfig.Config) *Config {
	cfg := &Config{
		General: GeneralConfig{
			Name:        src.GetString("general.name"),
			Environment: src.GetString("general.environment"),
		},
		Log: LogConfig{
			Level:  src.GetString("log.level"),
			Format: src.GetString("log.format"),
		},
		Solve: SolveConfig{
			MaxVariables: src.GetInt("solve.max_variables"),
			PrintAST:     src.GetBool("solve.print_ast"),
		},
	}

	cfg.applyDefaults()

	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "boole"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}

	// Log. Warnings stay visible by default so that the search-space
	// warning reaches the terminal; results themselves go to stdout.
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Solve
	if c.Solve.MaxVariables == 0 {
		c.Solve.MaxVariables = 25
	}
}

// Validate checks that all configuration values are usable
func (c *Config) Validate() error {
	if _, err := boolelog.ParseLevel(c.Log.Level); err != nil {
		return booleerror.Wrap(err, fmt.Sprintf("invalid log level: %s", c.Log.Level)).
			WithCode(booleerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("level", c.Log.Level)
	}

	if _, err := boolelog.ParseFormat(c.Log.Format); err != nil {
		return booleerror.Wrap(err, fmt.Sprintf("invalid log format: %s", c.Log.Format)).
			WithCode(booleerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("format", c.Log.Format)
	}

	if c.Solve.MaxVariables < 1 {
		return booleerror.New(fmt.Sprintf("max_variables must be positive, got %d", c.Solve.MaxVariables)).
			WithCode(booleerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("max_variables", c.Solve.MaxVariables)
	}

	return nil
}

// LoggerConfig translates the logging section into a logger configuration.
// Verbose lowers the level to debug regardless of the configured level.
func (c *Config) LoggerConfig(verbose bool) boolelog.Config {
	level, err := boolelog.ParseLevel(c.Log.Level)
	if err != nil {
		level = boolelog.QuietLevel()
	}
	if verbose {
		level = boolelog.LevelDebug
	}

	format, err := boolelog.ParseFormat(c.Log.Format)
	if err != nil {
		format = boolelog.FormatText
	}

	return boolelog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   c.General.Name,
	}
}
