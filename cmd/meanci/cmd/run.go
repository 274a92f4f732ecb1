package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aclements/go-meanci/internal/experiment"
	"github.com/aclements/go-meanci/internal/report"
)

func runCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Draw samples of each size and print an interval per method and size.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			reports, err := experiment.Run(cmd.Context(), c)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), c.Format, reports)
		},
	}
	return cmd
}
