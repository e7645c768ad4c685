// Package config handles generator configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// DefaultBaseDir is the icon tree of the SupportPac, relative to the
// repository checkout.
const DefaultBaseDir = "src/ACEv13/v2.0.1.0/PGPSupportPac/icons/full"

// Config holds all generator settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls where icons are written.
type OutputConfig struct {
	BaseDir      string `yaml:"base_dir"`      // Root of the icon folders (clcl16, obj16, ...)
	BackupSuffix string `yaml:"backup_suffix"` // Appended to an icon path to name its backup
	CreateDirs   bool   `yaml:"create_dirs"`   // Create missing icon directories
}

// PreviewConfig holds contact sheet settings.
type PreviewConfig struct {
	Path  string `yaml:"path"`
	Scale int    `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			BaseDir:      DefaultBaseDir,
			BackupSuffix: ".bak",
			CreateDirs:   false,
		},
		Preview: PreviewConfig{
			Path:  "icons-preview.png",
			Scale: 8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// MaxPreviewScale bounds the contact sheet enlargement.
const MaxPreviewScale = 64

// Validate reports the first setting the generator cannot work with.
func (c *Config) Validate() error {
	if c.Output.BaseDir == "" {
		return errors.New("output.base_dir is empty")
	}
	if c.Output.BackupSuffix == "" {
		return errors.New("output.backup_suffix is empty")
	}
	if c.Preview.Scale < 1 || c.Preview.Scale > MaxPreviewScale {
		return fmt.Errorf("preview.scale %d out of range 1..%d", c.Preview.Scale, MaxPreviewScale)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
