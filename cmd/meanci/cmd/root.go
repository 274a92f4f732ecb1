package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aclements/go-meanci/internal/config"
	"github.com/aclements/go-meanci/internal/logging"
)

const configFlag = "config"

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "meanci",
		Short: "meanci computes confidence intervals for the mean of a normal population.",
		Long: `meanci compares three ways of estimating a confidence interval for a
population mean: a z interval, a Student's t interval and a percentile
bootstrap interval.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addConfigFlags(cmd.PersistentFlags())
	// Binding can only fail for a nil flag.
	_ = v.BindPFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		runCmd(v),
		describeCmd(v),
	)
	return cmd
}

func addConfigFlags(fs *pflag.FlagSet) {
	d := config.Default()
	fs.String(configFlag, "", "Config file to read (YAML, JSON or TOML).")
	fs.Float64("mean", d.Mean, "Mean of the normal population samples are drawn from.")
	fs.Float64("stddev", d.StdDev, "Standard deviation of the normal population.")
	fs.Float64("confidence", d.Confidence, "Confidence level of each interval, in (0, 1).")
	fs.IntSlice("sampleSizes", d.SampleSizes, "Sample sizes to draw for each method.")
	fs.Int("resamples", d.Resamples, "Number of bootstrap resamples.")
	fs.Int("resampleSize", d.ResampleSize, "Size of each bootstrap resample; 0 means the sample size.")
	fs.Uint64("seed", d.Seed, "Random seed; method k uses seed+k.")
	fs.Int("parallelism", d.Parallelism, "Number of methods to run concurrently.")
	fs.StringSlice("methods", d.Methods, "Methods to run, in order: z, t, bootstrap.")
	fs.String("format", d.Format, "Output format: text, json or yaml.")
	fs.String("logLevel", d.LogLevel, "Log level: debug, info, warn or error.")
}

// loadConfig resolves the configuration for cmd from v and applies
// its log level.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (config.Config, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return config.Config{}, err
	}
	c, err := config.Load(v, path)
	if err != nil {
		return config.Config{}, err
	}
	if err := logging.ConfigureCommandLineLogging(os.Stderr, c.LogLevel); err != nil {
		return config.Config{}, err
	}
	return c, nil
}
