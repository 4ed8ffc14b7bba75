// Package config loads the sidecar's YAML configuration and watches it for
// changes.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/nstehr/vimy/vimy-hero/model"
	"github.com/nstehr/vimy/vimy-hero/rules"
	"gopkg.in/yaml.v3"
)

// DefaultSocket is where the sidecar listens when no socket is configured.
const DefaultSocket = "/tmp/vimy-hero.sock"

// LogLevel is one of debug, info, warn, error.
type LogLevel string

func (l LogLevel) IsValid() bool {
	return slices.Contains([]LogLevel{"debug", "info", "warn", "error"}, l)
}

type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Policy    rules.Policy     `yaml:"policy"`
	Behaviors []BehaviorConfig `yaml:"behaviors"`
}

type ServerConfig struct {
	Socket      string   `yaml:"socket"`
	LogLevel    LogLevel `yaml:"log_level"`
	MetricsAddr string   `yaml:"metrics_addr"`
}

// BehaviorConfig describes one capture behavior. Objects selects specific
// mode; otherwise Kinds and SubIDs filter the clustered objects.
type BehaviorConfig struct {
	Name    string             `yaml:"name"`
	Objects []int              `yaml:"objects"`
	Kinds   []model.ObjectKind `yaml:"kinds"`
	SubIDs  []int              `yaml:"sub_ids"`
}

// Specific reports whether the behavior targets explicit object ids.
func (b BehaviorConfig) Specific() bool { return len(b.Objects) > 0 }

// Default returns the configuration used without a config file: one
// behavior capturing every clustered object.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Socket: DefaultSocket, LogLevel: "info"},
		Policy:    rules.DefaultPolicy(),
		Behaviors: []BehaviorConfig{{Name: "capture-all"}},
	}
}

// Load reads the YAML configuration file at path and returns a validated [Config].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of [Default] and
// validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	cfg.Policy.Validate()
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Socket == "" {
		errs = append(errs, errors.New("server.socket must not be empty"))
	}
	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}

	if len(cfg.Behaviors) == 0 {
		errs = append(errs, errors.New("behaviors: at least one behavior is required"))
	}
	for i, b := range cfg.Behaviors {
		if b.Specific() && (len(b.Kinds) > 0 || len(b.SubIDs) > 0) {
			errs = append(errs, fmt.Errorf("behaviors[%d]: objects cannot be combined with kinds or sub_ids", i))
		}
		if len(b.SubIDs) > 0 && len(b.Kinds) == 0 {
			errs = append(errs, fmt.Errorf("behaviors[%d]: sub_ids require kinds", i))
		}
	}

	gatesOK := true
	for i, g := range cfg.Policy.Gates {
		if g.Name == "" || g.Kind == "" || g.Condition == "" {
			errs = append(errs, fmt.Errorf("policy.gates[%d]: name, kind and condition are required", i))
			gatesOK = false
		}
	}
	if gatesOK {
		if _, err := rules.NewEngine(rules.CompilePolicy(cfg.Policy)); err != nil {
			errs = append(errs, fmt.Errorf("policy.gates: %w", err))
		}
	}

	return errors.Join(errs...)
}
