package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
	"moul.io/zapfilter"
)

// Config describes per-logger levels read from a yaml file.
//
// Example:
//
//	defaultLevel: info
//	loggers:
//	  predict: debug
//	  race*: warn
type Config struct {
	DefaultLevel string            `yaml:"defaultLevel"`
	Loggers      map[string]string `yaml:"loggers"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse log config: %w", err)
	}
	if cfg.DefaultLevel == "" {
		cfg.DefaultLevel = "info"
	}
	return cfg, nil
}

// Rules converts the config into zapfilter rules
func (c *Config) Rules() (string, error) {
	if _, err := ParseLevel(c.DefaultLevel); err != nil {
		return "", err
	}
	rules := []string{fmt.Sprintf("%s+:*", c.DefaultLevel)}
	names := make([]string, 0, len(c.Loggers))
	for name := range c.Loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lvl := c.Loggers[name]
		if _, err := ParseLevel(lvl); err != nil {
			return "", fmt.Errorf("logger %s: %w", name, err)
		}
		rules = append(rules, fmt.Sprintf("%s+:%s", lvl, name))
	}
	return strings.Join(rules, " "), nil
}

// NewWithConfig creates a logger which applies the per-logger levels of cfg.
// The core itself runs on debug level, zapfilter decides what is written.
// Level() of the returned logger reports the configured default level.
func NewWithConfig(writer io.Writer, format string, cfg *Config, opts ...Option) (*Logger, error) {
	defaultLevel, err := ParseLevel(cfg.DefaultLevel)
	if err != nil {
		return nil, err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, err
	}
	enc := consoleEncoder()
	if format == "json" {
		enc = jsonEncoder()
	}
	ret := newLogger(writer, DebugLevel, enc, func(c zapcore.Core) zapcore.Core {
		return zapfilter.NewFilteringCore(c, filter)
	}, opts...)
	ret.level = defaultLevel
	return ret, nil
}
