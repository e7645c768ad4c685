package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Zero values leave the loaded config
// untouched.
type Flags struct {
	ConfigPath string
	BaseDir    string
	LogFile    string
	Debug      bool
	CreateDirs bool
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file")
	fs.StringVar(&f.BaseDir, "base-dir", "", "Icon tree root directory")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.CreateDirs, "create-dirs", false, "Create missing icon directories")
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.BaseDir != "" {
		cfg.Output.BaseDir = f.BaseDir
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.CreateDirs {
		cfg.Output.CreateDirs = true
	}
}
