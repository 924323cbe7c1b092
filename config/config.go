package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/bassmanitram/envlog/core"
	"github.com/bassmanitram/envlog/directive"
)

// Config is the YAML form of a level configuration: one optional global
// default plus an ordered list of per-logger rules. Rule order matters
// the same way directive order does; the later of two equally specific
// rules wins.
type Config struct {
	// LogLevel is the default level name (default: warn)
	LogLevel string `yaml:"log_level"`
	// Loggers are the per-logger rules, most general first by convention
	Loggers []Logger `yaml:"loggers"`
}

// Logger binds one dotted logger name to a level name.
type Logger struct {
	Name     string `yaml:"name"`
	LogLevel string `yaml:"log_level"`
}

// Load reads and unmarshals a YAML configuration file. It fails only on
// I/O and YAML syntax problems; semantic mistakes such as unknown level
// names are left for Validate and are dropped when the configuration is
// compiled and applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// Directive compiles the configuration to the directive-string grammar,
// so files and environment variables share one parser and one
// resolution semantics. Entries that would fail Validate are left out
// of the compiled string: a stray ',' or '=' in a name or level would
// otherwise splice extra tokens into the grammar.
func (c *Config) Directive() string {
	parts := make([]string, 0, len(c.Loggers)+1)
	if _, ok := core.ParseLevel(c.LogLevel); ok {
		parts = append(parts, c.LogLevel)
	}
	for _, l := range c.Loggers {
		if l.compilable() {
			parts = append(parts, l.Name+"="+l.LogLevel)
		}
	}
	return strings.Join(parts, ",")
}

// compilable mirrors the Validate checks for one entry. Only entries
// that pass them reach the directive string.
func (l Logger) compilable() bool {
	if !directive.ValidTarget(l.Name) || strings.ContainsAny(l.Name, ",=") {
		return false
	}
	_, ok := core.ParseLevel(l.LogLevel)
	return ok
}

// Ruleset parses the compiled directive into a Ruleset. Entries dropped
// at compile time simply have no effect.
func (c *Config) Ruleset() *core.Ruleset {
	return directive.Parse(c.Directive())
}

// Validate reports every semantic problem in the configuration as one
// combined error, or nil if there are none. A failing Validate does not
// prevent applying the configuration; it exists so hosts can surface
// entries that would silently have no effect.
func (c *Config) Validate() error {
	var errs error

	if c.LogLevel != "" {
		if _, ok := core.ParseLevel(c.LogLevel); !ok {
			errs = multierr.Append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
		}
	}

	for i, l := range c.Loggers {
		switch {
		case l.Name == "":
			errs = multierr.Append(errs, fmt.Errorf("loggers[%d]: name is required", i))
		case strings.ContainsAny(l.Name, ",="):
			errs = multierr.Append(errs, fmt.Errorf("loggers[%d]: name %q may not contain ',' or '='", i, l.Name))
		case !directive.ValidTarget(l.Name):
			errs = multierr.Append(errs, fmt.Errorf("loggers[%d]: name %q has an empty segment", i, l.Name))
		}

		if l.LogLevel == "" {
			errs = multierr.Append(errs, fmt.Errorf("loggers[%d]: log_level is required", i))
		} else if _, ok := core.ParseLevel(l.LogLevel); !ok {
			errs = multierr.Append(errs, fmt.Errorf("loggers[%d]: unknown level %q", i, l.LogLevel))
		}
	}

	return errs
}
