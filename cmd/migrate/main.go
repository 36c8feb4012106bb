package main

import (
	"dormy/config"
	"dormy/helper"
	"dormy/shared/logger"
	"os"

	"github.com/spf13/cobra"
)

var dir string

func main() {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or roll back the dormy Postgres schema",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.InitLogger()
			logger.SetLogLevel(config.Get())
		},
	}

	root.PersistentFlags().StringVar(&dir, "dir", helper.DefaultMigrationsDir, "directory holding the migration files")

	root.AddCommand(
		actionCmd(helper.ActionUp, "Apply every pending migration"),
		actionCmd(helper.ActionDown, "Roll back the latest migration"),
		actionCmd(helper.ActionStepUp, "Apply the next pending migration"),
		actionCmd(helper.ActionDrop, "Roll back every migration"),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func actionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Runner(config.Get(), dir, action)
		},
	}
}
