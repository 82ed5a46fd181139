package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print ARM's configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.client()
			if err != nil {
				return err
			}
			settings, err := client.FetchSettings(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch settings: %w", err)
			}

			needle := strings.ToLower(strings.TrimSpace(filter))
			keys := make([]string, 0, len(settings.ARMConfig))
			for key := range settings.ARMConfig {
				if needle == "" || strings.Contains(strings.ToLower(key), needle) {
					keys = append(keys, key)
				}
			}
			sort.Strings(keys)

			out := cmd.OutOrStdout()
			if len(keys) == 0 {
				fmt.Fprintln(out, "No matching settings")
				return nil
			}
			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				value := "null"
				if v := settings.ARMConfig[key]; v != nil {
					value = *v
				}
				rows = append(rows, []string{key, value})
			}
			fmt.Fprintln(out, renderTable([]string{"Key", "Value"}, rows, nil, shouldColorize(out)))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Only show keys containing this text")
	return cmd
}
