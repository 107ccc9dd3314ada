package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/darealghost7/data-vis/pkg/steps"
)

var (
	flagSeed         uint64
	flagParticipants int
	flagDays         int
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Generate a synthetic step-count cohort and report descriptive statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc := cfg.Steps
		if cmd.Flags().Changed("seed") {
			sc.Seed = flagSeed
		}
		if cmd.Flags().Changed("participants") {
			sc.Participants = flagParticipants
		}
		if cmd.Flags().Changed("days") {
			sc.Days = flagDays
		}

		logger.Info().
			Uint64("seed", sc.Seed).
			Int("participants", sc.Participants).
			Int("days", sc.Days).
			Msg("generating step-count cohort")

		cohort := steps.NewGenerator(sc.Seed).Generate(sc.Participants, sc.Days)
		steps.WriteReport(os.Stdout, cohort, steps.Summarize(cohort))
		return nil
	},
}

func init() {
	stepsCmd.Flags().Uint64Var(&flagSeed, "seed", 42, "random seed (identical seeds reproduce identical cohorts)")
	stepsCmd.Flags().IntVar(&flagParticipants, "participants", 15, "number of participants")
	stepsCmd.Flags().IntVar(&flagDays, "days", 14, "number of days per participant")
	rootCmd.AddCommand(stepsCmd)
}
