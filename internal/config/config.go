package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"golang.org/x/xerrors"
)

const DefaultListenAddr = "127.0.0.1:43211"

// Config is a cxxflags-daemon config file, typically cxxflags.yml near the project.
type Config struct {
	Listen     string   `yaml:"listen,omitempty"`
	UnixSocket string   `yaml:"unix_socket,omitempty"` // optional, for hosts without grpc
	BaseDir    string   `yaml:"base_dir,omitempty"`
	ExtraFlags []string `yaml:"extra_flags,omitempty"`
	Log        *Log     `yaml:"log,omitempty"`
}

type Log struct {
	Filename  string `yaml:"filename,omitempty"`
	Verbosity int64  `yaml:"verbosity,omitempty"`
}

// Default is used when no config file is given.
func Default() *Config {
	return &Config{
		Listen: DefaultListenAddr,
		Log:    &Log{},
	}
}

func LoadConfig(confPath string) (*Config, error) {
	file, err := os.ReadFile(confPath)
	if err != nil {
		return nil, xerrors.Errorf("failed to read config file from %s: %w", confPath, err)
	}
	cfg, err := ParseConfig(file)
	if err != nil {
		return nil, xerrors.Errorf("invalid config %s: %w", confPath, err)
	}
	return cfg, nil
}

// ParseConfig unmarshals and validates a config, filling missing fields with defaults.
func ParseConfig(contents []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, xerrors.New(yaml.FormatError(err, false, true))
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListenAddr
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.BaseDir != "" && !filepath.IsAbs(cfg.BaseDir) {
		return xerrors.Errorf("base_dir must be absolute, got %q", cfg.BaseDir)
	}
	if cfg.Log != nil && (cfg.Log.Verbosity < -1 || cfg.Log.Verbosity > 2) {
		return xerrors.Errorf("log.verbosity must be in -1..2, got %d", cfg.Log.Verbosity)
	}
	for i, arg := range cfg.ExtraFlags {
		if arg == "" {
			return xerrors.Errorf("extra_flags[%d] is empty", i)
		}
	}
	return nil
}

// BaseDirOr returns BaseDir if set, otherwise def.
func (cfg *Config) BaseDirOr(def string) string {
	if cfg.BaseDir != "" {
		return cfg.BaseDir
	}
	return def
}
