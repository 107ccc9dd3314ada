package cmd

import (
	"github.com/spf13/cobra"

	"github.com/darealghost7/data-vis/pkg/salary"
)

var flagSalaryOutput string

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Plot experience vs salary with per-location regression fits",
	RunE: func(cmd *cobra.Command, _ []string) error {
		output := cfg.Salary.Output
		if cmd.Flags().Changed("output") {
			output = flagSalaryOutput
		}

		records := salary.Dataset()
		fits := salary.FitByLocation(records, logger)
		if err := salary.Render(records, fits, output); err != nil {
			return err
		}
		logger.Info().Str("path", output).Msg("saved experience/salary chart")
		return nil
	},
}

func init() {
	salaryCmd.Flags().StringVar(&flagSalaryOutput, "output", "experience_salary.png", "path to write the chart PNG")
	rootCmd.AddCommand(salaryCmd)
}
