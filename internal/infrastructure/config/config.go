// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for logitrust configuration.
	DefaultConfigDir = ".logitrust"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite file name.
	DefaultDatabaseFile = "logitrust.db"
	// DefaultReportWindowDays is the report window used when none is set.
	DefaultReportWindowDays = 30
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	LLM      LLMConfig      `yaml:"llm,omitempty"`
	Embedder EmbedderConfig `yaml:"embedder,omitempty"`
	Qdrant   QdrantConfig   `yaml:"qdrant,omitempty"`
	SQLite   SQLiteConfig   `yaml:"sqlite,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Report   ReportConfig   `yaml:"report,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
}

// LLMConfig holds configuration for the briefing LLM provider.
type LLMConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// EmbedderConfig holds configuration for the embedding provider.
type EmbedderConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// QdrantConfig holds configuration for the Qdrant vector database.
type QdrantConfig struct {
	Host       string `yaml:"host,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	Collection string `yaml:"collection,omitempty"`
	APIKey     string `yaml:"api_key,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite database.
type SQLiteConfig struct {
	// Path is the database file. Relative paths resolve against the project
	// directory; ":memory:" keeps everything in memory.
	Path string `yaml:"path,omitempty"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// ReportConfig holds configuration for scheduled CSV exports.
type ReportConfig struct {
	// Schedule is a cron spec; empty disables scheduled exports.
	Schedule   string `yaml:"schedule,omitempty"`
	WindowDays int    `yaml:"window_days,omitempty"`
	OutputDir  string `yaml:"output_dir,omitempty"`
}

// LoggingConfig holds configuration for server logs.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
		Embedder: EmbedderConfig{
			Provider: "openai",
			Model:    "text-embedding-3-small",
		},
		Qdrant: QdrantConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: "logitrust_places",
		},
		SQLite: SQLiteConfig{
			Path: filepath.Join(DefaultConfigDir, DefaultDatabaseFile),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Report: ReportConfig{
			WindowDays: DefaultReportWindowDays,
			OutputDir:  filepath.Join(DefaultConfigDir, "reports"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the .logitrust directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'logitrust init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.resolvePaths(basePath)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if c.LLM.APIKey == "" {
			c.LLM.APIKey = key
		}
		if c.Embedder.APIKey == "" {
			c.Embedder.APIKey = key
		}
	}
	if key := os.Getenv("QDRANT_API_KEY"); key != "" {
		if c.Qdrant.APIKey == "" {
			c.Qdrant.APIKey = key
		}
	}
	if addr := os.Getenv("LOGITRUST_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if path := os.Getenv("LOGITRUST_DB_PATH"); path != "" {
		c.SQLite.Path = path
	}
}

// resolvePaths makes relative file paths absolute under basePath.
func (c *Config) resolvePaths(basePath string) {
	if c.SQLite.Path != "" && c.SQLite.Path != ":memory:" && !filepath.IsAbs(c.SQLite.Path) {
		c.SQLite.Path = filepath.Join(basePath, c.SQLite.Path)
	}
	if c.Report.OutputDir != "" && !filepath.IsAbs(c.Report.OutputDir) {
		c.Report.OutputDir = filepath.Join(basePath, c.Report.OutputDir)
	}
}

// SemanticSearchEnabled reports whether an embedding key is configured.
func (c *Config) SemanticSearchEnabled() bool {
	return strings.TrimSpace(c.Embedder.APIKey) != ""
}

// ConfigDir returns the path to the .logitrust config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a logitrust config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
