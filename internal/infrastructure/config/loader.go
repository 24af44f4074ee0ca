package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	errs "github.com/amirhossein-jamali/modlog/internal/domain/error"
	"github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/sink"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. MODLOG_FACADE_LEVEL
const EnvPrefix = "MODLOG"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the current environment. A missing
// config file is not an error: defaults and environment variables apply.
func LoadConfig() (*Config, error) {
	cfg, _, err := Load()
	return cfg, err
}

// Load is LoadConfig that also returns the viper instance so callers can Watch it
func Load() (*Config, *viper.Viper, error) {
	// .env is optional for a library
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	cfg.Environment = env

	if err := Validate(cfg); err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Watch re-decodes the configuration whenever the underlying file changes and
// hands valid results to onChange. Invalid edits are ignored.
func Watch(v *viper.Viper, onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil || Validate(cfg) != nil {
			return
		}
		cfg.Environment = getEnvironment()
		onChange(cfg)
	})
	v.WatchConfig()
}

// Validate rejects unknown environments, sink kinds and logger formats
func Validate(cfg *Config) error {
	var problems []string

	switch cfg.Environment {
	case Development, Production, Test:
	default:
		problems = append(problems, fmt.Sprintf("environment %q", cfg.Environment))
	}

	if !sink.ValidKind(cfg.Facade.Sink) {
		problems = append(problems, fmt.Sprintf("facade.sink %q", cfg.Facade.Sink))
	}

	switch strings.ToLower(cfg.Logger.Format) {
	case "", "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("logger.format %q", cfg.Logger.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errs.ErrInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Facade.Sink = strings.ToLower(strings.TrimSpace(config.Facade.Sink))
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults keeps every key known to viper so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")

	v.SetDefault("facade.level", "5")
	v.SetDefault("facade.filter", "")
	v.SetDefault("facade.sink", sink.KindConsole)
	v.SetDefault("facade.watch", false)
}

// getEnvironment determines the environment from MODLOG_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}
