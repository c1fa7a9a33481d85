package config

import (
	"fmt"
	"os"
	"path/filepath"
	"rosterFixture/internal/logger"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type OutputConfig struct {
	File            string    `toml:"file"`
	Sheet           string    `toml:"sheet"`
	ColumnWidths    []float64 `toml:"column_widths"`
	HeaderColor     string    `toml:"header_color"`
	HeaderFontColor string    `toml:"header_font_color"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the settings the generator uses without a config file
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			File:            "sample_students.xlsx",
			Sheet:           "学员数据",
			ColumnWidths:    []float64{15, 10, 10, 15, 10},
			HeaderColor:     "4472C4",
			HeaderFontColor: "FFFFFF",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads configuration from the specified config file path.
// A missing file yields the defaults and is not created.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Debug("Config file not found, using defaults", "path", configPath)
		return Default(), nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Set defaults if missing
	def := Default()
	if config.Output.File == "" {
		config.Output.File = def.Output.File
	}
	if config.Output.Sheet == "" {
		config.Output.Sheet = def.Output.Sheet
	}
	if len(config.Output.ColumnWidths) == 0 {
		config.Output.ColumnWidths = def.Output.ColumnWidths
	}
	if config.Output.HeaderColor == "" {
		config.Output.HeaderColor = def.Output.HeaderColor
	}
	if config.Output.HeaderFontColor == "" {
		config.Output.HeaderFontColor = def.Output.HeaderFontColor
	}
	if config.Log.Level == "" {
		config.Log.Level = def.Log.Level
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
