package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/agentsh/sigcompat/internal/signal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging LoggingConfig  `yaml:"logging"`
	Signals []SignalConfig `yaml:"signals"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SignalConfig is one group of signals sharing a disposition.
type SignalConfig struct {
	// Signals lists names ("SIGHUP", "hup"), numbers, or groups ("@terminal").
	Signals []string `yaml:"signals"`
	// Action is "ignore" or "default".
	Action string `yaml:"action"`
	// Restart requests restart of interrupted system calls. Defaults to true.
	Restart *bool `yaml:"restart"`
	// SigInfo requests extended fault context where the platform has it.
	SigInfo bool `yaml:"siginfo"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromBytes loads configuration from bytes without applying environment
// overrides. This is intended for testing where env vars should not interfere.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with no signal setups.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	for i := range cfg.Signals {
		sc := &cfg.Signals[i]
		sc.Action = strings.ToLower(strings.TrimSpace(sc.Action))
		if sc.Restart == nil {
			restart := true
			sc.Restart = &restart
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SIGCOMPAT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SIGCOMPAT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

func validateConfig(cfg *Config) error {
	if _, err := ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", cfg.Logging.Format)
	}
	for i, sc := range cfg.Signals {
		if len(sc.Signals) == 0 {
			return fmt.Errorf("signals[%d]: no signals listed", i)
		}
		if _, err := handlerFor(sc.Action); err != nil {
			return fmt.Errorf("signals[%d]: %w", i, err)
		}
		if _, err := signal.ParseSignals(sc.Signals); err != nil {
			return fmt.Errorf("signals[%d]: %w", i, err)
		}
	}
	return nil
}

// Setups expands the signal section into one setup per signal. Later
// entries win when a signal is listed more than once.
func (c *Config) Setups() ([]signal.Setup, error) {
	index := make(map[int]int)
	var out []signal.Setup
	for i, sc := range c.Signals {
		h, err := handlerFor(sc.Action)
		if err != nil {
			return nil, fmt.Errorf("signals[%d]: %w", i, err)
		}
		sigs, err := signal.ParseSignals(sc.Signals)
		if err != nil {
			return nil, fmt.Errorf("signals[%d]: %w", i, err)
		}
		restart := sc.Restart == nil || *sc.Restart
		for _, sig := range sigs {
			s := signal.Setup{Signal: sig, Handler: h, SigInfo: sc.SigInfo, Restart: restart}
			if at, ok := index[sig]; ok {
				out[at] = s
				continue
			}
			index[sig] = len(out)
			out = append(out, s)
		}
	}
	return out, nil
}

func handlerFor(action string) (signal.Handler, error) {
	switch action {
	case "ignore":
		return signal.HandlerIgnore, nil
	case "default":
		return signal.HandlerDefault, nil
	default:
		return 0, fmt.Errorf("invalid action %q (want ignore or default)", action)
	}
}

// ParseLevel converts a level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid logging.level %q", level)
	}
}

// Logger builds a logger writing to w.
func (l LoggingConfig) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch l.Format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid logging.format %q", l.Format)
	}
}
