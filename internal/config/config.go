package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sghaida/rootfind/grid"
	"github.com/sghaida/rootfind/solve"
)

// EnvPrefix prefixes every environment override, e.g. ROOTFIND_WORKERS.
const EnvPrefix = "ROOTFIND"

// Keys, also used as YAML field names.
const (
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
	KeyWorkers       = "workers"
	KeyMethod        = "method"
	KeyTolerance     = "tolerance"
	KeyMaxIterations = "max_iterations"
)

// Config holds the settings shared by all commands.
type Config struct {
	LogLevel      string  `mapstructure:"log_level" yaml:"log_level"`
	LogFormat     string  `mapstructure:"log_format" yaml:"log_format"`
	Workers       int     `mapstructure:"workers" yaml:"workers"`
	Method        string  `mapstructure:"method" yaml:"method"`
	Tolerance     float64 `mapstructure:"tolerance" yaml:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations" yaml:"max_iterations"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Workers:       1,
		Method:        solve.BFGS.String(),
		Tolerance:     solve.DefaultTolerance,
		MaxIterations: solve.DefaultMaxIterations,
	}
}

// Load layers the defaults, the YAML file at path (skipped when empty), ROOTFIND_* variables
// and finally any changed flags in fs whose names match a key with '-' for '_'.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)
	v.SetDefault(KeyWorkers, def.Workers)
	v.SetDefault(KeyMethod, def.Method)
	v.SetDefault(KeyTolerance, def.Tolerance)
	v.SetDefault(KeyMaxIterations, def.MaxIterations)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range []string{KeyLogLevel, KeyLogFormat, KeyWorkers, KeyMethod, KeyTolerance, KeyMaxIterations} {
			if f := fs.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be > 0, got %d", c.Workers)
	}
	if _, err := solve.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("config: tolerance must be > 0, got %g", c.Tolerance)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("config: max_iterations must be > 0, got %d", c.MaxIterations)
	}
	return nil
}

// Logger applies the level and format to l and returns it. Unknown levels fall back to info.
func (c Config) Logger(l *logrus.Logger) *logrus.Logger {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l
}

// GridOptions returns the grid options implied by the settings.
func (c Config) GridOptions() []grid.Option {
	return []grid.Option{grid.WithWorkers(c.Workers)}
}

// SolveOptions returns the solver options implied by the settings.
func (c Config) SolveOptions() []solve.Option {
	m, err := solve.ParseMethod(c.Method)
	if err != nil {
		m = solve.BFGS
	}
	return []solve.Option{
		solve.WithMethod(m),
		solve.WithTolerance(c.Tolerance),
		solve.WithMaxIterations(c.MaxIterations),
	}
}
