package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/on-the-ground/pure_ive_go/internal/configkeys"
	"github.com/on-the-ground/pure_ive_go/internal/logging"
	"github.com/on-the-ground/pure_ive_go/internal/workout"
)

func newWorkoutCommand(v *viper.Viper) *cobra.Command {
	workoutCmd := &cobra.Command{
		Use:   "workout",
		Short: "Generate today's workout plan",
		Long: `Generate a workout plan for the given intensity.

The intensity calculation is slow and is memoized, so a plan that uses the
value twice only pays for it once.

Examples:
  pureive workout --intensity 10 --random 7
  pureive workout --intensity 30 --random 3 --delay 0s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkoutCommand(cmd, v)
		},
	}

	workoutCmd.Flags().Uint32("intensity", 10, "user-specified intensity")
	workoutCmd.Flags().Uint32("random", 7, "random number deciding rest days")
	workoutCmd.Flags().Duration("delay", 0, "simulated duration of the intensity calculation")
	_ = v.BindPFlag(configkeys.ConfigWorkoutIntensity, workoutCmd.Flags().Lookup("intensity"))
	_ = v.BindPFlag(configkeys.ConfigWorkoutRandomNumber, workoutCmd.Flags().Lookup("random"))
	_ = v.BindPFlag(configkeys.ConfigWorkoutDelay, workoutCmd.Flags().Lookup("delay"))

	return workoutCmd
}

func runWorkoutCommand(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(v)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	gen := workout.NewGenerator(
		workout.SimulatedCalculation(v.GetDuration(configkeys.ConfigWorkoutDelay), logger),
		logger,
	)
	plan := gen.Generate(
		v.GetUint32(configkeys.ConfigWorkoutIntensity),
		v.GetUint32(configkeys.ConfigWorkoutRandomNumber),
	)

	for _, step := range plan.Steps {
		fmt.Fprintln(cmd.OutOrStdout(), step)
	}
	return nil
}
