// Package config loads solver settings from flags, environment variables
// and an optional YAML file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"q.log/bigm/simplex"
)

const envPrefix = "BIGM"

// Config holds the tunables of the simplex engine.
type Config struct {
	PenaltyScale         float64 `mapstructure:"penalty-scale"`
	Penalty              float64 `mapstructure:"penalty"`
	Tolerance            float64 `mapstructure:"tolerance"`
	FeasibilityTolerance float64 `mapstructure:"feasibility-tolerance"`
	MaxIterations        int     `mapstructure:"max-iterations"`
}

func Default() Config {
	return Config{
		PenaltyScale:         simplex.DefaultPenaltyScale,
		Tolerance:            simplex.DefaultTolerance,
		FeasibilityTolerance: simplex.DefaultFeasibilityTolerance,
		MaxIterations:        simplex.DefaultMaxIterations,
	}
}

// AddFlags registers one flag per setting.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Float64("penalty-scale", d.PenaltyScale, "Big-M penalty as a multiple of the largest input coefficient")
	fs.Float64("penalty", 0, "absolute Big-M penalty, overrides --penalty-scale when positive")
	fs.Float64("tolerance", d.Tolerance, "zero threshold for reduced costs and pivot elements")
	fs.Float64("feasibility-tolerance", d.FeasibilityTolerance, "relative tolerance of the final constraint audit")
	fs.Int("max-iterations", d.MaxIterations, "maximum number of pivots")
}

// Load merges defaults, the config file (if non-empty), BIGM_* environment
// variables and flags, in increasing order of precedence.
func Load(v *viper.Viper, fs *pflag.FlagSet, file string) (Config, error) {
	d := Default()
	v.SetDefault("penalty-scale", d.PenaltyScale)
	v.SetDefault("penalty", d.Penalty)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("feasibility-tolerance", d.FeasibilityTolerance)
	v.SetDefault("max-iterations", d.MaxIterations)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "config: reading %s", file)
		}
	}
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "config")
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.PenaltyScale <= 0 && c.Penalty <= 0 {
		return errors.New("config: penalty-scale or penalty must be positive")
	}
	if c.Tolerance < 0 || c.FeasibilityTolerance < 0 {
		return errors.New("config: tolerances must not be negative")
	}
	if c.MaxIterations < 0 {
		return errors.New("config: max-iterations must not be negative")
	}
	return nil
}

// Options converts the configuration to solver options.
func (c Config) Options() []simplex.Option {
	return []simplex.Option{
		simplex.WithPenaltyScale(c.PenaltyScale),
		simplex.WithPenalty(c.Penalty),
		simplex.WithTolerance(c.Tolerance),
		simplex.WithFeasibilityTolerance(c.FeasibilityTolerance),
		simplex.WithMaxIterations(c.MaxIterations),
	}
}
