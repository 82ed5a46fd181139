package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/format"
	"github.com/five82/armview/internal/logtail"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var remote string
	var list bool
	var full bool
	var transcoder bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show armview's log or a log served by ARM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			if transcoder && !list && remote == "" {
				return fmt.Errorf("--transcoder needs --list or --remote")
			}

			if list {
				client, err := ctx.client()
				if err != nil {
					return err
				}
				fetchLogs := client.FetchLogs
				if transcoder {
					fetchLogs = client.FetchTranscoderLogs
				}
				files, err := fetchLogs(cmd.Context())
				if err != nil {
					return fmt.Errorf("list logs: %w", err)
				}
				if len(files) == 0 {
					fmt.Fprintln(out, "No log files")
					return nil
				}
				rows := make([][]string, 0, len(files))
				for _, f := range files {
					rows = append(rows, []string{f.Filename, format.FormatBytes(f.Size), format.FormatDateTime(f.Modified)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"File", "Size", "Modified"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
					colorize,
				))
				return nil
			}

			var text []string
			if remote != "" {
				client, err := ctx.client()
				if err != nil {
					return err
				}
				mode := arm.LogModeTail
				if full {
					mode = arm.LogModeFull
				}
				fetchContent := client.FetchLogContent
				if transcoder {
					fetchContent = client.FetchTranscoderLogContent
				}
				content, err := fetchContent(cmd.Context(), remote, mode, lines)
				if err != nil {
					return fmt.Errorf("fetch log %s: %w", remote, err)
				}
				limit := lines
				if full {
					limit = math.MaxInt
				}
				text = logtail.Tail(content.Content, limit)
			} else {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				text, err = logtail.Read(cfg.LogPath(), lines)
				if err != nil {
					return err
				}
				if len(text) == 0 {
					fmt.Fprintf(out, "No log entries in %s\n", cfg.LogPath())
					return nil
				}
			}

			for _, line := range logtail.FormatLines(text, colorize) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 100, "Number of lines to show")
	cmd.Flags().StringVar(&remote, "remote", "", "Read the named log file from ARM instead of armview's own log")
	cmd.Flags().BoolVar(&full, "full", false, "With --remote, fetch the whole file")
	cmd.Flags().BoolVar(&list, "list", false, "List the log files ARM serves")
	cmd.Flags().BoolVar(&transcoder, "transcoder", false, "With --list or --remote, use the transcoder's logs")
	return cmd
}
