// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for the configuration management module
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial documentation

/*
Package config provides configuration management for boole applications
with support for TOML and YAML files, environment variable overrides,
default values, validation, and automatic file discovery.

# Features

  - TOML and YAML parsing with automatic format detection by extension
  - Dot notation access to nested values ("log.level", "solve.print_ast")
  - Environment variable overrides with a configurable prefix
  - Default values merged below file content
  - Rule based validation (required, type, bounds, pattern)
  - Automatic discovery across standard search paths
  - Thread-safe access

# Basic Usage

Load a configuration file and read typed values:

	cfg, err := config.Load("boole.toml")
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "info")
	printAST := cfg.GetBool("solve.print_ast")
	maxVars := cfg.GetInt("solve.max_variables", 25)

Short aliases are available for compact call sites:

	level := cfg.S("log.level", "info")
	maxVars := cfg.I("solve.max_variables", 25)

# Environment Variable Overrides

When an environment prefix is configured, environment variables take
precedence over file values. The key "log.level" with prefix "BOOLE"
maps to BOOLE_LOG_LEVEL:

	cfg, err := config.LoadWithOptions("boole.toml", config.LoadOptions{
		EnvPrefix: "BOOLE",
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{"level": "info"},
		},
	})

# Discovery

Discover searches standard locations so tools can run without an
explicit configuration file:

	cfg, err := config.Discover(config.DiscoveryOptions{
		Paths:     []string{".", "./config"},
		Filenames: []string{"boole"},
		EnvPrefix: "BOOLE",
	})

With Required set to false a missing file is not an error; the returned
configuration carries the defaults and still honors environment
variable overrides.

# Validation

Validate checks loaded values against declarative rules:

	result := cfg.Validate(config.ValidationRules{
		"log.level": {Type: "string", Pattern: "^(trace|debug|info|warn|error|fatal)$"},
		"solve.max_variables": {Type: "int", Min: 1},
	})
	if !result.Valid {
		for _, msg := range result.Errors {
			log.Warn(msg)
		}
	}
*/
package config
