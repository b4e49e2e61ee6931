// Package cmd provides the pureive command-line interface.
//
// Configuration sources, highest priority first:
//  1. Command-line flags (--intensity, --skip, ...)
//  2. Environment variables with the PUREIVE_ prefix (PUREIVE_WORKOUT_INTENSITY, ...)
//  3. The config file given by --config, or .pureive.yml in the working directory
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/on-the-ground/pure_ive_go/internal/configkeys"
	"github.com/on-the-ground/pure_ive_go/internal/logging"
)

// NewRootCommand wires every subcommand to a fresh viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "pureive",
		Short: "Memoized workouts and bounded counters",
		Long: `pureive exercises two small utilities:

  workout   plan a workout around a memoized intensity calculation
  counter   drain a bounded counter that can skip one value`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pureive.yml)")
	rootCmd.PersistentFlags().StringP("log-level", "l", string(logging.LogWarn), "log level (debug, info, warn, error)")
	_ = v.BindPFlag(configkeys.ConfigLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newWorkoutCommand(v), newCounterCommand(v))
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".pureive")
	}

	v.SetEnvPrefix(configkeys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine, an explicit one is not
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	level, err := logging.ParseLevel(v.GetString(configkeys.ConfigLogLevel))
	if err != nil {
		return nil, err
	}
	return logging.New(level)
}
