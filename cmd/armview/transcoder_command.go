package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/format"
)

func newTranscoderCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcoder",
		Short: "Inspect and manage the transcoder queue",
	}
	cmd.AddCommand(newTranscoderJobsCommand(ctx))
	cmd.AddCommand(newTranscoderActionCommand(ctx, "retry", "Requeue a failed transcoder job",
		func(c *arm.Client, cmd *cobra.Command, id int64) (arm.ActionResult, error) {
			return c.RetryTranscoderJob(cmd.Context(), id)
		}))
	cmd.AddCommand(newTranscoderActionCommand(ctx, "delete", "Remove a transcoder job",
		func(c *arm.Client, cmd *cobra.Command, id int64) (arm.ActionResult, error) {
			return c.DeleteTranscoderJob(cmd.Context(), id)
		}))
	return cmd
}

func newTranscoderJobsCommand(ctx *commandContext) *cobra.Command {
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List transcoder jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.client()
			if err != nil {
				return err
			}
			list, err := client.FetchTranscoderJobs(cmd.Context(), arm.TranscoderJobQuery{Status: status, Limit: limit})
			if err != nil {
				return fmt.Errorf("fetch transcoder jobs: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(list.Jobs) == 0 {
				fmt.Fprintln(out, "No transcoder jobs")
				return nil
			}
			now := time.Now()
			rows := make([][]string, 0, len(list.Jobs))
			for _, j := range list.Jobs {
				rows = append(rows, []string{
					strconv.FormatInt(j.ID, 10),
					format.Truncate(j.InputPath, 60),
					j.Status,
					fmt.Sprintf("%.0f%%", j.Progress),
					format.TimeAgo(j.CreatedAt, now),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Input", "Status", "Progress", "Created"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
				shouldColorize(out),
			))
			if list.Total > len(list.Jobs) {
				fmt.Fprintf(out, "%d of %d jobs\n", len(list.Jobs), list.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Only show jobs with this status")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of jobs to list")
	return cmd
}

func newTranscoderActionCommand(
	ctx *commandContext,
	name, short string,
	run func(*arm.Client, *cobra.Command, int64) (arm.ActionResult, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid transcoder job id %q", args[0])
			}
			client, err := ctx.client()
			if err != nil {
				return err
			}
			res, err := run(client, cmd, id)
			if err != nil {
				return fmt.Errorf("%s transcoder job %d: %w", name, id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), actionSummary(fmt.Sprintf("Transcoder job %d", id), name, res))
			return nil
		},
	}
}
