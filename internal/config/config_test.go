package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test output defaults
	if cfg.Output.BaseDir != DefaultBaseDir {
		t.Errorf("expected base dir %s, got %s", DefaultBaseDir, cfg.Output.BaseDir)
	}
	if cfg.Output.BackupSuffix != ".bak" {
		t.Errorf("expected backup suffix .bak, got %s", cfg.Output.BackupSuffix)
	}
	if cfg.Output.CreateDirs {
		t.Error("expected create_dirs to be false by default")
	}

	// Test preview defaults
	if cfg.Preview.Scale != 8 {
		t.Errorf("expected preview scale 8, got %d", cfg.Preview.Scale)
	}
	if cfg.Preview.Path == "" {
		t.Error("expected a default preview path")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pgpicons.yaml")

	yamlContent := `
output:
  base_dir: "/work/supportpac/icons/full"
  backup_suffix: ".orig"
  create_dirs: true

preview:
  path: "sheet.png"
  scale: 4

logging:
  level: "debug"
  log_file: "icons.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.BaseDir != "/work/supportpac/icons/full" {
		t.Errorf("expected base dir from file, got %s", cfg.Output.BaseDir)
	}
	if cfg.Output.BackupSuffix != ".orig" {
		t.Errorf("expected backup suffix .orig, got %s", cfg.Output.BackupSuffix)
	}
	if !cfg.Output.CreateDirs {
		t.Error("expected create_dirs to be true")
	}
	if cfg.Preview.Path != "sheet.png" || cfg.Preview.Scale != 4 {
		t.Errorf("expected preview sheet.png x4, got %s x%d", cfg.Preview.Path, cfg.Preview.Scale)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "icons.log" {
		t.Errorf("expected log file 'icons.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("preview:\n  scale: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Preview.Scale != 2 {
		t.Errorf("expected scale 2, got %d", cfg.Preview.Scale)
	}
	// Untouched sections keep their defaults
	if cfg.Output.BaseDir != DefaultBaseDir {
		t.Errorf("expected default base dir, got %s", cfg.Output.BaseDir)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
preview:
  scale: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/pgpicons.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("preview:\n  scale: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		flags  Flags
		verify func(*Config)
	}{
		{
			name:  "debug flag",
			flags: Flags{Debug: true},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:  "base dir flag",
			flags: Flags{BaseDir: "/tmp/icons"},
			verify: func(cfg *Config) {
				if cfg.Output.BaseDir != "/tmp/icons" {
					t.Errorf("expected base dir /tmp/icons, got %s", cfg.Output.BaseDir)
				}
			},
		},
		{
			name:  "log file flag",
			flags: Flags{LogFile: "run.log"},
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file run.log, got %s", cfg.Logging.LogFile)
				}
			},
		},
		{
			name:  "create dirs flag",
			flags: Flags{CreateDirs: true},
			verify: func(cfg *Config) {
				if !cfg.Output.CreateDirs {
					t.Error("expected create_dirs to be true with create-dirs flag")
				}
			},
		},
		{
			name:  "no flags",
			flags: Flags{},
			verify: func(cfg *Config) {
				if *cfg != *Default() {
					t.Errorf("expected defaults, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			applyFlags(cfg, &tt.flags)
			tt.verify(cfg)
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)

	err := fs.Parse([]string{"-c", "alt.yaml", "--base-dir", "out", "--debug", "--create-dirs"})
	if err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	if f.ConfigPath != "alt.yaml" || f.BaseDir != "out" || !f.Debug || !f.CreateDirs {
		t.Errorf("flags not bound: %+v", f)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pgpicons.yaml")

	yamlContent := `
output:
  base_dir: "from-file"
preview:
  scale: 5
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(&Flags{ConfigPath: configPath, BaseDir: "from-flag"})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Base dir should be from flag, not file
	if cfg.Output.BaseDir != "from-flag" {
		t.Errorf("expected base dir from flag, got %s", cfg.Output.BaseDir)
	}

	// Scale should be from file since no flag override
	if cfg.Preview.Scale != 5 {
		t.Errorf("expected scale 5 from file, got %d", cfg.Preview.Scale)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	if _, err := Load(&Flags{ConfigPath: "/nonexistent/pgpicons.yaml"}); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pgpicons.yaml")

	cfg := Default()
	cfg.Preview.Scale = 6
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	loaded.Preview.Scale = 1
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Preview.Scale != 6 {
		t.Errorf("expected saved scale 6, got %d", loaded.Preview.Scale)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty base dir", func(c *Config) { c.Output.BaseDir = "" }, true},
		{"empty backup suffix", func(c *Config) { c.Output.BackupSuffix = "" }, true},
		{"zero scale", func(c *Config) { c.Preview.Scale = 0 }, true},
		{"huge scale", func(c *Config) { c.Preview.Scale = MaxPreviewScale + 1 }, true},
		{"max scale", func(c *Config) { c.Preview.Scale = MaxPreviewScale }, false},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"warn level", func(c *Config) { c.Logging.Level = "warn" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(configPath, []byte("preview:\n  scale: 7\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv(EnvConfig, configPath)

	cfg, err := Load(&Flags{})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Preview.Scale != 7 {
		t.Errorf("expected scale 7 from env config, got %d", cfg.Preview.Scale)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  basedir: x\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(&Flags{ConfigPath: configPath}); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(&Flags{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("expected empty file to be accepted: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadInvalidValue(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("preview:\n  scale: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(&Flags{ConfigPath: configPath}); err == nil {
		t.Error("expected validation error for scale 0")
	}
}
