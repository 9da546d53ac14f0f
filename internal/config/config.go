package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Extract ExtractConfig `yaml:"extract" envconfig:"EXTRACT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/ccxstat.log"`
}

// ExtractConfig contains defaults for the extraction run
type ExtractConfig struct {
	// Quantities lists the element variables to summarize, in report order.
	Quantities []string `yaml:"quantities" envconfig:"QUANTITIES" default:"mises,eeq,peeq" validate:"min=1,dive,oneof=mises eeq peeq"`
	// Format selects the report writer.
	Format string `yaml:"format" envconfig:"FORMAT" default:"txt" validate:"oneof=txt csv json"`
	// Precision is the number of fractional digits in scientific notation output.
	Precision int `yaml:"precision" envconfig:"PRECISION" default:"4" validate:"min=1,max=12"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("CCXSTAT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Logging.Level == defaultLogLevel && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Output == defaultLogOutput && fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == defaultLogFilePath && fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if len(fileConfig.Extract.Quantities) > 0 && isDefaultQuantities(envConfig.Extract.Quantities) {
		envConfig.Extract.Quantities = fileConfig.Extract.Quantities
	}
	if envConfig.Extract.Format == defaultFormat && fileConfig.Extract.Format != "" {
		envConfig.Extract.Format = fileConfig.Extract.Format
	}
	if envConfig.Extract.Precision == defaultPrecision && fileConfig.Extract.Precision != 0 {
		envConfig.Extract.Precision = fileConfig.Extract.Precision
	}

	return envConfig
}

// isDefaultQuantities reports whether the quantity list still holds the
// envconfig default, meaning the environment did not override it.
func isDefaultQuantities(quantities []string) bool {
	defaults := []string{"mises", "eeq", "peeq"}
	if len(quantities) != len(defaults) {
		return false
	}
	for i, q := range quantities {
		if q != defaults[i] {
			return false
		}
	}
	return true
}

// getConfigFilePath returns the config file path, honoring CCXSTAT_CONFIG
func getConfigFilePath() string {
	if path := os.Getenv("CCXSTAT_CONFIG"); path != "" {
		return path
	}
	return ConfigFileName
}
