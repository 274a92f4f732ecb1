package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aclements/go-meanci/internal/experiment"
	"github.com/aclements/go-meanci/internal/report"
)

func describeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Read newline-separated numbers and print an interval per method.",
		Long: `describe reads a sample of newline-separated numbers from file, or from
stdin if no file is given, and prints the confidence interval for the
population mean computed by each configured method.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.WithStack(err)
				}
				defer f.Close()
				in = f
			}
			s, err := experiment.ReadSample(in)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"n":      len(s.Xs),
				"mean":   s.Mean(),
				"stddev": s.StdDev(),
			}).Debug("read sample")

			reports, err := experiment.Describe(cmd.Context(), c, s)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), c.Format, reports)
		},
	}
	return cmd
}
