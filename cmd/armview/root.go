package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/armview/internal/app"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var prefsFlag string
	var pollFlag int

	ctx := newCommandContext(&configFlag, &prefsFlag, &pollFlag)

	rootCmd := &cobra.Command{
		Use:           "armview",
		Short:         "Terminal dashboard for the Automatic Ripping Machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), ctx.options())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&prefsFlag, "prefs", "", "Theme preferences file path")
	rootCmd.PersistentFlags().IntVar(&pollFlag, "poll", 0, "Refresh interval in seconds (overrides config)")

	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newJobCommand(ctx))
	rootCmd.AddCommand(newLogCommand(ctx))
	rootCmd.AddCommand(newSettingsCommand(ctx))
	rootCmd.AddCommand(newTranscoderCommand(ctx))

	return rootCmd
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Open the live dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), ctx.options())
		},
	}
}
