package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the working directory.
const FileName = "pgpicons.yaml"

// EnvConfig names an environment variable holding a config file path.
const EnvConfig = "PGPICONS_CONFIG"

// Load builds the effective configuration: defaults, then the config file,
// then flag overrides. The result is validated.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	path, explicit := configPath(f)
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("loading config from %s: %w", path, err)
			}
		}
	}

	applyFlags(cfg, f)

	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// configPath picks the file to load. Paths named by flag or environment are
// explicit and must exist.
func configPath(f *Flags) (path string, explicit bool) {
	if f != nil && f.ConfigPath != "" {
		return f.ConfigPath, true
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, true
	}
	return findConfigFile(), false
}

// findConfigFile returns the first existing default config location.
func findConfigFile() string {
	for _, path := range []string{
		FileName,
		DefaultPath(),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory of the generator.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "PGPIcons")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "PGPIcons")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "pgp-icons")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pgp-icons")
	}
}

// loadFromFile merges the YAML file at path over cfg. Unknown keys are
// rejected so typos do not pass silently.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	return nil
}
