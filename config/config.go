// Package config carries tradescope's runtime settings. Settings come from
// an optional YAML/JSON file plus the process environment, and the resolved
// struct is handed to commands explicitly rather than read ambiently.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moltapp/tradescope/catalog"
)

// Environment variable names recognized by FromEnv.
const (
	EnvDBPath        = "TRADESCOPE_DB"
	EnvSymbol        = "TRADESCOPE_SYMBOL"
	EnvJupiterAPIKey = "JUPITER_API_KEY"
	EnvJupiterURL    = "JUPITER_API_URL"
)

// Config is the complete tradescope configuration.
type Config struct {
	Ledger  LedgerConfig  `json:"ledger" yaml:"ledger"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Jupiter JupiterConfig `json:"jupiter,omitempty" yaml:"jupiter,omitempty"`
}

// LedgerConfig locates the SQLite ledger database.
type LedgerConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ReportConfig contains reporting parameters.
type ReportConfig struct {
	Symbol string `json:"symbol" yaml:"symbol"`
}

// JupiterConfig contains Jupiter Price API credentials.
type JupiterConfig struct {
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{DBPath: "./tradescope.sqlite"},
		Report: ReportConfig{Symbol: "AAPLx"},
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	return cfg, nil
}

// FromEnv applies environment variable overrides on top of c. Call it
// after dotenv.Load so env-file entries are visible, with real environment
// values still taking precedence over the file.
func (c *Config) FromEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Ledger.DBPath = v
	}
	if v := os.Getenv(EnvSymbol); v != "" {
		c.Report.Symbol = v
	}
	if v := os.Getenv(EnvJupiterAPIKey); v != "" {
		c.Jupiter.APIKey = v
	}
	if v := os.Getenv(EnvJupiterURL); v != "" {
		c.Jupiter.BaseURL = v
	}
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	if c.Ledger.DBPath == "" {
		return fmt.Errorf("ledger.db_path is required")
	}
	if c.Report.Symbol == "" {
		return fmt.Errorf("report.symbol is required")
	}
	if _, ok := catalog.Lookup(c.Report.Symbol); !ok {
		return fmt.Errorf("unknown symbol: %s", c.Report.Symbol)
	}
	return nil
}

// ValidateJupiter checks the settings the prices command depends on.
func (c *Config) ValidateJupiter() error {
	if c.Jupiter.APIKey == "" {
		return fmt.Errorf("missing env var: %s", EnvJupiterAPIKey)
	}
	return nil
}
