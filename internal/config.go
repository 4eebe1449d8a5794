package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool's file locations and display settings.
type Config struct {
	// DataFile is the JSON file holding the sales records
	DataFile string `yaml:"data_file,omitempty"`

	// ReportsDir is where generated report files are placed
	ReportsDir string `yaml:"reports_dir,omitempty"`

	// Currency is the display currency code used in tables. Empty means
	// plain two-decimal numbers; "auto" detects from the system locale.
	Currency string `yaml:"currency,omitempty"`

	// ReportFormats lists extra report formats written alongside the
	// canonical text report (e.g. "json", "xlsx")
	ReportFormats []string `yaml:"report_formats,omitempty"`
}

// DefaultConfigPath returns the default config file path
// (~/.salestrack/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".salestrack", "config.yaml")
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DataFile:   "sales_data.json",
		ReportsDir: "reports",
	}
}

// LoadConfig reads a config file and fills in defaults for unset fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultConfig().DataFile
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = DefaultConfig().ReportsDir
	}

	for _, format := range cfg.ReportFormats {
		if _, err := GetWriter(format); err != nil {
			return nil, fmt.Errorf("invalid report format in config: %w", err)
		}
	}

	return cfg, nil
}

// Save writes the config, creating parent directories if they don't exist.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
