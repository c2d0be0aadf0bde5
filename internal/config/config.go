// Package config loads the CLI run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paretosearch/frontier"
	"github.com/katalvlaran/paretosearch/valve"
)

// ErrInvalid indicates a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid")

// Robots configures the blueprint solver.
type Robots struct {
	Horizon    int `yaml:"horizon"`     // quality-sum horizon
	TopHorizon int `yaml:"top_horizon"` // top-product horizon
	TopCount   int `yaml:"top_count"`   // blueprints in the product
}

// Config is the full run configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Workers  int           `yaml:"workers"` // 0 = GOMAXPROCS
	Pruning  string        `yaml:"pruning"` // none | duplicates | dominance
	Bounding bool          `yaml:"bounding"`
	Deadline time.Duration `yaml:"deadline"`
	Valves   valve.Config  `yaml:"valves"`
	Robots   Robots        `yaml:"robots"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Pruning:  "dominance",
		Bounding: true,
		Valves:   valve.DefaultConfig(),
		Robots:   Robots{Horizon: 24, TopHorizon: 32, TopCount: 3},
	}
}

// Load reads path over Default. Fields missing from the file keep their
// defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects non-positive horizons, negative workers or deadlines and
// unknown pruning modes.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}
	check(c.Workers >= 0, "workers=%d", c.Workers)
	check(c.Deadline >= 0, "deadline=%s", c.Deadline)
	check(c.Robots.Horizon > 0, "robots.horizon=%d", c.Robots.Horizon)
	check(c.Robots.TopHorizon > 0, "robots.top_horizon=%d", c.Robots.TopHorizon)
	check(c.Robots.TopCount > 0, "robots.top_count=%d", c.Robots.TopCount)
	if err := c.Valves.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: valves: %w", ErrInvalid, err))
	}
	if _, err := frontier.ParsePruneMode(c.Pruning); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// SearchOptions translates the engine-level fields into frontier options.
func (c Config) SearchOptions() ([]frontier.Option, error) {
	mode, err := frontier.ParsePruneMode(c.Pruning)
	if err != nil {
		return nil, err
	}

	return []frontier.Option{
		frontier.WithWorkers(c.Workers),
		frontier.WithPruning(mode),
		frontier.WithBounding(c.Bounding),
	}, nil
}
