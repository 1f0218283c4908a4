package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type targetConfig struct {
	Match string  `yaml:"match"`
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
}

func (t targetConfig) String() string {
	return fmt.Sprintf("%s:%s:%s", t.Match, formatFloat(t.From), formatFloat(t.To))
}

// config mirrors the persistent flags. Unset fields keep the flag defaults.
type config struct {
	FPS         *float64       `yaml:"fps"`
	Duration    *time.Duration `yaml:"duration"`
	DefaultFrom *float64       `yaml:"default_from"`
	DefaultTo   *float64       `yaml:"default_to"`
	Curve       string         `yaml:"curve"`
	Peak        *float64       `yaml:"peak"`
	AppID       []targetConfig `yaml:"app_id"`
	Class       []targetConfig `yaml:"class"`
	LogLevel    string         `yaml:"log_level"`
	LogFormat   string         `yaml:"log_format"`
}

func loadConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// values returns the flag values the config sets, by flag name.
func (cfg *config) values() map[string][]string {
	v := map[string][]string{}

	if cfg.FPS != nil {
		v["fps"] = []string{formatFloat(*cfg.FPS)}
	}
	if cfg.Duration != nil {
		v["duration"] = []string{cfg.Duration.String()}
	}
	if cfg.DefaultFrom != nil {
		v["default-from"] = []string{formatFloat(*cfg.DefaultFrom)}
	}
	if cfg.DefaultTo != nil {
		v["default-to"] = []string{formatFloat(*cfg.DefaultTo)}
	}
	if cfg.Curve != "" {
		v["curve"] = []string{cfg.Curve}
	}
	if cfg.Peak != nil {
		v["peak"] = []string{formatFloat(*cfg.Peak)}
	}
	for _, t := range cfg.AppID {
		v["app_id"] = append(v["app_id"], t.String())
	}
	for _, t := range cfg.Class {
		v["class"] = append(v["class"], t.String())
	}
	if cfg.LogLevel != "" {
		v["log-level"] = []string{cfg.LogLevel}
	}
	if cfg.LogFormat != "" {
		v["log-format"] = []string{cfg.LogFormat}
	}

	return v
}

// apply sets the flags that were not given on the command line.
func (cfg *config) apply(flags *pflag.FlagSet) error {
	for name, vals := range cfg.values() {
		if flags.Lookup(name) == nil || flags.Changed(name) {
			continue
		}
		for _, val := range vals {
			if err := flags.Set(name, val); err != nil {
				return fmt.Errorf("config %s: %w", name, err)
			}
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
