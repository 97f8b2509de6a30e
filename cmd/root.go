package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := newConfig()

	rootCmd := &cobra.Command{
		Use:           "appear",
		Short:         "Measure how long pupil and tutor were in a lesson together",
		Long:          "appear computes the time a pupil and a tutor were simultaneously present during a lesson, from enter/leave logs, and keeps a catalogue of lessons to report on and verify.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(cfg.GetString(logLevelKey))
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", defaultLogLevel, "Log level (trace, debug, info, warn, error)")
	_ = cfg.BindPFlag(logLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))

	app, err := wireApp(cfg)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newComputeCmd(app),
		newLessonCmd(app),
		newReportCmd(app),
		newVerifyCmd(app),
	)

	return rootCmd
}
