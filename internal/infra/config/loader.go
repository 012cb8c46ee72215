// Package config loads the optional per-repository toolindex
// configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"toolindex/internal/domain"
)

// Config is the resolved generator configuration. Dir is not part of
// the config file; the CLI sets it from the --dir flag.
type Config struct {
	Dir           string
	IndexFile     string
	TemplateFile  string
	Exclude       []string
	WatchDebounce time.Duration
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Dir:           ".",
		IndexFile:     domain.DefaultIndexFileName,
		TemplateFile:  domain.DefaultTemplateFileName,
		WatchDebounce: domain.DefaultWatchDebounce,
	}
}

// ExcludedNames returns every file name the scanner must skip: the
// index, the template, the config file itself, and configured extras.
func (c Config) ExcludedNames() []string {
	names := []string{c.IndexFile, c.TemplateFile, domain.DefaultConfigFileName}
	return append(names, c.Exclude...)
}

type rawConfig struct {
	IndexFile    string         `mapstructure:"indexFile"`
	TemplateFile string         `mapstructure:"templateFile"`
	Exclude      []string       `mapstructure:"exclude"`
	Watch        rawWatchConfig `mapstructure:"watch"`
}

type rawWatchConfig struct {
	DebounceMillis int `mapstructure:"debounceMillis"`
}

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		return &Loader{logger: zap.NewNop()}
	}
	return &Loader{logger: logger.Named("config")}
}

func newConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("indexFile", domain.DefaultIndexFileName)
	v.SetDefault("templateFile", domain.DefaultTemplateFileName)
	v.SetDefault("watch.debounceMillis", int(domain.DefaultWatchDebounce/time.Millisecond))
}

// Load reads and validates the config file at path.
func (l *Loader) Load(path string) (Config, error) {
	const op = "config"

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, domain.E(domain.CodeReadFailed, op, fmt.Sprintf("read config %s: %v", path, err), err)
	}

	v := newConfigViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Config{}, domain.E(domain.CodeConfigInvalid, op, fmt.Sprintf("parse config %s: %v", path, err), err)
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return Config{}, domain.E(domain.CodeConfigInvalid, op, fmt.Sprintf("decode config %s: %v", path, err), err)
	}

	cfg, err := resolve(raw)
	if err != nil {
		return Config{}, domain.E(domain.CodeConfigInvalid, op, fmt.Sprintf("config %s: %v", path, err), err)
	}

	l.logger.Debug("config loaded",
		zap.String("path", path),
		zap.String("indexFile", cfg.IndexFile),
		zap.String("templateFile", cfg.TemplateFile),
		zap.Int("excludes", len(cfg.Exclude)))
	return cfg, nil
}

func resolve(raw rawConfig) (Config, error) {
	cfg := Default()

	if raw.IndexFile != "" {
		cfg.IndexFile = raw.IndexFile
	}
	if raw.TemplateFile != "" {
		cfg.TemplateFile = raw.TemplateFile
	}
	cfg.Exclude = append([]string(nil), raw.Exclude...)

	if raw.Watch.DebounceMillis < 0 {
		return Config{}, fmt.Errorf("watch.debounceMillis must not be negative, got %d", raw.Watch.DebounceMillis)
	}
	cfg.WatchDebounce = time.Duration(raw.Watch.DebounceMillis) * time.Millisecond

	if cfg.IndexFile == cfg.TemplateFile {
		return Config{}, fmt.Errorf("indexFile and templateFile must differ, both are %q", cfg.IndexFile)
	}
	return cfg, nil
}
