// Package config resolves the command-line tool's configuration from
// defaults, an optional YAML file, PIZZA_* environment variables and flags.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pizza/builder"
	"github.com/katalvlaran/pizza/internal/render"
)

// Defaults and well-known names.
const (
	DefaultConfigFile = "pizza.yaml"
	DefaultKind       = "general"
	DefaultOutput     = string(render.FormatText)
	DefaultLogLevel   = "warn"
	EnvPrefix         = "PIZZA_"
)

// Config is the resolved configuration. Size and Shape left empty keep the
// chosen variant's defaults; Toppings are appended after the defaults.
type Config struct {
	Kind     string   `koanf:"kind"`
	Size     string   `koanf:"size"`
	Shape    string   `koanf:"shape"`
	Toppings []string `koanf:"toppings"`
	Output   string   `koanf:"output"`
	LogLevel string   `koanf:"log_level"`

	// FileUsed is the config file that was read, or empty.
	FileUsed string `koanf:"-"`
}

// Load resolves configuration. cfgFile names an explicit YAML file; when
// empty, ./pizza.yaml is read if it exists. flags may be nil; only flags the
// user changed are applied, with kebab-case names mapped to snake_case keys.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"kind":      DefaultKind,
		"size":      "",
		"shape":     "",
		"toppings":  []string{},
		"output":    DefaultOutput,
		"log_level": DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: PIZZA_LOG_LEVEL -> log_level, PIZZA_TOPPINGS="a,b" -> [a b]
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "toppings" {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			// --topping is repeatable and feeds the toppings list.
			if key == "topping" {
				key = "toppings"
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used

	return &cfg, nil
}

// Validate checks the fields that are not tied to a pizza order.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return nil
}

// Order converts the textual order fields into builder values.
// Unknown text is reported with the builder sentinels (ErrUnknownKind,
// ErrUnknownSize, ErrUnknownShape, ErrUnknownTopping).
func (c *Config) Order() (Order, error) {
	var (
		o   Order
		err error
	)

	if o.Kind, err = builder.ParseKind(c.Kind); err != nil {
		return Order{}, err
	}
	if c.Size != "" {
		if o.Size, err = builder.ParseSize(c.Size); err != nil {
			return Order{}, err
		}
	}
	if c.Shape != "" {
		if o.Shape, err = builder.ParseShape(c.Shape); err != nil {
			return Order{}, err
		}
	}
	if o.Toppings, err = builder.ParseToppings(c.Toppings); err != nil {
		return Order{}, err
	}

	return o, nil
}

// splitList splits a comma-separated value, trimming blanks and dropping
// empty items.
func splitList(value string) []string {
	out := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
