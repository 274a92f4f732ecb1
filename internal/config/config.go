// Package config holds the parameters of a confidence interval
// experiment and loads them from defaults, a config file, the
// environment and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// config values, e.g. MEANCI_CONFIDENCE=0.99.
const EnvPrefix = "MEANCI"

// Method names accepted in Config.Methods.
const (
	MethodZ         = "z"
	MethodT         = "t"
	MethodBootstrap = "bootstrap"
)

// Output formats accepted in Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config describes the population samples are drawn from and how
// their intervals are estimated.
type Config struct {
	// Mean and StdDev parameterize the normal population.
	Mean   float64 `mapstructure:"mean"`
	StdDev float64 `mapstructure:"stddev"`

	// Confidence is the confidence level of every interval, in (0, 1).
	Confidence float64 `mapstructure:"confidence"`

	// SampleSizes lists the sizes of the samples drawn for each
	// method, in report order. Each must be at least 2.
	SampleSizes []int `mapstructure:"sampleSizes"`

	// Resamples is the number of bootstrap repetitions.
	Resamples int `mapstructure:"resamples"`

	// ResampleSize is the size of each bootstrap resample. Zero
	// means the size of the sample being resampled.
	ResampleSize int `mapstructure:"resampleSize"`

	// Seed seeds the random source of each method. Method k
	// (counting from 0) uses Seed+k.
	Seed uint64 `mapstructure:"seed"`

	// Parallelism bounds how many methods run at once.
	Parallelism int `mapstructure:"parallelism"`

	// Methods lists the estimators to run, in report order.
	Methods []string `mapstructure:"methods"`

	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"logLevel"`
}

// Default returns the configuration of the reference experiment:
// N(10, 2), 95% confidence, sample sizes 5 through 1000, and all three
// methods.
func Default() Config {
	return Config{
		Mean:        10,
		StdDev:      2,
		Confidence:  0.95,
		SampleSizes: []int{5, 10, 20, 40, 80, 160, 1000},
		Resamples:   1000,
		Seed:        1,
		Parallelism: 1,
		Methods:     []string{MethodZ, MethodT, MethodBootstrap},
		Format:      FormatText,
		LogLevel:    "info",
	}
}

// SetDefaults registers Default() with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("mean", d.Mean)
	v.SetDefault("stddev", d.StdDev)
	v.SetDefault("confidence", d.Confidence)
	v.SetDefault("sampleSizes", d.SampleSizes)
	v.SetDefault("resamples", d.Resamples)
	v.SetDefault("resampleSize", d.ResampleSize)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("parallelism", d.Parallelism)
	v.SetDefault("methods", d.Methods)
	v.SetDefault("format", d.Format)
	v.SetDefault("logLevel", d.LogLevel)
}

// Load reads configuration from v. If path is not empty, it names a
// config file (any format viper understands) that is merged over the
// defaults. Environment variables prefixed with EnvPrefix override
// both. Flags should already be bound to v by the caller.
//
// The returned Config has been validated.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	var result *multierror.Error
	if !(c.StdDev > 0) {
		result = multierror.Append(result, fmt.Errorf("stddev must be positive, got %v", c.StdDev))
	}
	if !(c.Confidence > 0 && c.Confidence < 1) {
		result = multierror.Append(result, fmt.Errorf("confidence must be in (0, 1), got %v", c.Confidence))
	}
	if len(c.SampleSizes) == 0 {
		result = multierror.Append(result, errors.New("at least one sample size is required"))
	}
	for _, n := range c.SampleSizes {
		if n < 2 {
			result = multierror.Append(result, fmt.Errorf("sample size must be at least 2, got %d", n))
		}
	}
	if c.Resamples < 1 {
		result = multierror.Append(result, fmt.Errorf("resamples must be at least 1, got %d", c.Resamples))
	}
	if c.ResampleSize < 0 {
		result = multierror.Append(result, fmt.Errorf("resampleSize must not be negative, got %d", c.ResampleSize))
	}
	if c.Parallelism < 1 {
		result = multierror.Append(result, fmt.Errorf("parallelism must be at least 1, got %d", c.Parallelism))
	}
	if len(c.Methods) == 0 {
		result = multierror.Append(result, errors.New("at least one method is required"))
	}
	for _, m := range c.Methods {
		switch m {
		case MethodZ, MethodT, MethodBootstrap:
		default:
			result = multierror.Append(result, fmt.Errorf("unknown method %q", m))
		}
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		result = multierror.Append(result, fmt.Errorf("unknown format %q", c.Format))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
