package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
	"github.com/caarlos0/env/v11"
)

const (
	SourceStatic = "static"
	SourceFile   = "file"
	SourceGithub = "github"
)

// config structure
type Config struct {
	API     APIConfig     `mapstructure:"API" envPrefix:"DASHBOARD_"`
	Catalog CatalogConfig `mapstructure:"CATALOG" envPrefix:"DASHBOARD_CATALOG_"`
	Charts  ChartsConfig  `mapstructure:"CHARTS" envPrefix:"DASHBOARD_CHARTS_"`
	Github  GithubConfig  `mapstructure:"GITHUB" envPrefix:"GITHUB_"`
	Tasks   TasksConfig   `mapstructure:"TASKS" envPrefix:"DASHBOARD_TASKS_"`
	Logs    LogsConfig    `mapstructure:"LOGS" envPrefix:"DASHBOARD_LOG_"`
}

type APIConfig struct {
	ListenPort   string   `mapstructure:"ListenPort" env:"LISTEN_PORT"`
	AllowOrigins []string `mapstructure:"AllowOrigins" env:"ALLOW_ORIGINS"`
}

type CatalogConfig struct {
	Source string `mapstructure:"Source" env:"SOURCE"` // static | file | github
	Path   string `mapstructure:"Path" env:"PATH"`     // only used with the file source
}

type ChartsConfig struct {
	// StrictEmptySeries makes the activity chart fail on an empty series
	// instead of dropping the maximum annotation
	StrictEmptySeries bool `mapstructure:"StrictEmptySeries" env:"STRICT_EMPTY_SERIES"`
}

type GithubConfig struct {
	Owner    string `mapstructure:"Owner" env:"OWNER"`
	Language string `mapstructure:"Language" env:"LANGUAGE"`
	License  string `mapstructure:"License" env:"LICENSE"`
	Token    string `mapstructure:"Token" env:"TOKEN"`
}

type TasksConfig struct {
	MaxParallelTasksAllowed int `mapstructure:"MaxParallelTasksAllowed" env:"MAX_PARALLEL"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level" env:"LEVEL"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJson" env:"JSON"`
}

// Load reads config/config.toml next to the binary or in the working directory,
// then applies environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := GetDefault()

	configFilePath, err := findConfigFile()
	if err != nil {
		return nil, err
	}

	if configFilePath != "" {
		if _, err := snakelet.InitAndLoad(cfg, configFilePath); err != nil {
			return nil, fmt.Errorf("load %s: %w", configFilePath, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides cfg with the environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate
func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourceStatic:
	case SourceFile:
		if c.Catalog.Path == "" {
			return errors.New("catalog source \"file\" requires CATALOG.Path")
		}
	case SourceGithub:
		if c.Github.Owner == "" {
			return errors.New("catalog source \"github\" requires GITHUB.Owner")
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	if c.Tasks.MaxParallelTasksAllowed < 1 {
		return errors.New("TASKS.MaxParallelTasksAllowed must be at least 1")
	}

	return nil
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort:   "5000",
			AllowOrigins: []string{"*"},
		},
		Catalog: CatalogConfig{
			Source: SourceStatic,
		},
		Tasks: TasksConfig{
			MaxParallelTasksAllowed: 8,
		},
		Logs: LogsConfig{
			Level:            "debug",
			OutputLogsAsJSON: false,
		},
	}
}

func findConfigFile() (string, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return "", err
	}

	for _, candidate := range []string{filepath.Join(dir, "config", "config.toml"), filepath.Join("config", "config.toml")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", nil
}
