// Package config manages tool configuration from files and environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the tool configuration.
type Config struct {
	// Open controls whether the output workbook is opened with the OS
	// default application after a successful run.
	Open bool `mapstructure:"open"`

	// Color enables colored status output.
	Color bool `mapstructure:"color"`

	// SampleRows is how many rows template generation reads per sheet.
	SampleRows int `mapstructure:"sample_rows"`

	History struct {
		Enabled bool   `mapstructure:"enabled"`
		File    string `mapstructure:"file"`
	} `mapstructure:"history"`
}

// Load reads the configuration from ~/.xlstack/config.yaml and environment
// variables. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	dir := configDir()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	viper.SetDefault("open", true)
	viper.SetDefault("color", true)
	viper.SetDefault("sample_rows", 5)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.file", filepath.Join(dir, "history.jsonl"))

	viper.SetEnvPrefix("XLSTACK")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigPath returns where the tool looks for its configuration file.
func ConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xlstack"
	}
	return filepath.Join(home, ".xlstack")
}
