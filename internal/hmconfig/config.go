// Package hmconfig loads the optional .hmtype.yaml file that extends the
// inference engine's default typing environment with prelude bindings, and
// carries the CLI's color/verbosity defaults.
package hmconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wisp/internal/hm"
)

// Binding describes one prelude entry: a curried function from Params (in
// declaration order) to Result, each named by one of the engine's base
// types. There is no type-expression syntax here - surface parsing is out
// of scope for this engine, so a prelude binding's shape is restricted to
// what the config format can name directly.
type Binding struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,omitempty"`
	Result string   `yaml:"result"`
}

// Config is the .hmtype.yaml shape.
type Config struct {
	Prelude []Binding `yaml:"prelude,omitempty"`
	Color   *bool     `yaml:"color,omitempty"`
	Verbose bool      `yaml:"verbose,omitempty"`
}

// Default returns the zero-value configuration: no extra prelude bindings,
// color left to terminal auto-detection, solver diagnostics off.
func Default() *Config {
	return &Config{}
}

// Load reads and parses path. A missing file is not an error; it resolves
// to Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Prelude))
	for i, b := range c.Prelude {
		if b.Name == "" {
			return fmt.Errorf("prelude[%d]: name is required", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("prelude[%d]: duplicate binding for %q", i, b.Name)
		}
		seen[b.Name] = true

		if b.Result == "" {
			return fmt.Errorf("prelude[%d] (%s): result is required", i, b.Name)
		}
		if _, err := baseType(b.Result); err != nil {
			return fmt.Errorf("prelude[%d] (%s): %w", i, b.Name, err)
		}
		for _, p := range b.Params {
			if _, err := baseType(p); err != nil {
				return fmt.Errorf("prelude[%d] (%s): %w", i, b.Name, err)
			}
		}
	}
	return nil
}

func baseType(name string) (hm.Type, error) {
	switch name {
	case "Number":
		return hm.NumberType(), nil
	case "String":
		return hm.StringType(), nil
	case "Boolean":
		return hm.BooleanType(), nil
	default:
		return nil, fmt.Errorf("unknown base type %q (expected Number, String or Boolean)", name)
	}
}

// Env builds the engine's default typing environment extended with this
// configuration's prelude bindings.
func (c *Config) Env() (hm.TypeEnv, error) {
	env := hm.NewTypeEnv()
	for _, b := range c.Prelude {
		ty, err := baseType(b.Result)
		if err != nil {
			return nil, err
		}
		for i := len(b.Params) - 1; i >= 0; i-- {
			param, err := baseType(b.Params[i])
			if err != nil {
				return nil, err
			}
			ty = hm.Arrow(param, ty)
		}
		env = env.WithBinding(b.Name, &hm.Scheme{Body: ty})
	}
	return env, nil
}

// ColorEnabled resolves whether colorized output should be used. An
// explicit Color setting in the config always wins; otherwise it follows
// isTerminal.
func (c *Config) ColorEnabled(isTerminal bool) bool {
	if c.Color != nil {
		return *c.Color
	}
	return isTerminal
}
