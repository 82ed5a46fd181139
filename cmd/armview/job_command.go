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

var jobActionFlags = []struct {
	name   string
	action arm.JobAction
	usage  string
}{
	{"abandon", arm.JobAbandon, "Abandon the running job"},
	{"cancel", arm.JobCancel, "Cancel a job waiting for input"},
	{"start", arm.JobStart, "Start a waiting job now"},
	{"pause", arm.JobPause, "Pause a waiting job's countdown"},
	{"fix-permissions", arm.JobFixPermissions, "Reset ownership and permissions of the job's files"},
	{"retranscode", arm.JobRetranscode, "Send the job's rips to the transcoder again"},
}

func newJobCommand(ctx *commandContext) *cobra.Command {
	actions := make(map[string]*bool, len(jobActionFlags))
	var deleteJob bool

	cmd := &cobra.Command{
		Use:   "job <id>",
		Short: "Show one job with its tracks and rip progress, or act on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid job id %q", args[0])
			}
			client, err := ctx.client()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if deleteJob {
				res, err := client.DeleteJob(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("delete job %d: %w", id, err)
				}
				fmt.Fprintln(out, actionSummary(fmt.Sprintf("Job %d", id), "deleted", res))
				return nil
			}
			for _, f := range jobActionFlags {
				if !*actions[f.name] {
					continue
				}
				res, err := client.RunJobAction(cmd.Context(), id, f.action)
				if err != nil {
					return fmt.Errorf("%s job %d: %w", f.name, id, err)
				}
				fmt.Fprintln(out, actionSummary(fmt.Sprintf("Job %d", id), f.name, res))
			}

			detail, err := client.FetchJob(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("fetch job %d: %w", id, err)
			}
			var progress *arm.RipProgress
			if format.IsJobActive(detail.Status) {
				p, err := client.FetchJobProgress(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("fetch job %d progress: %w", id, err)
				}
				progress = &p
			}
			fmt.Fprint(out, renderJob(detail, progress, time.Now(), shouldColorize(out)))
			return nil
		},
	}

	names := make([]string, 0, len(jobActionFlags)+1)
	for _, f := range jobActionFlags {
		actions[f.name] = cmd.Flags().Bool(f.name, false, f.usage)
		names = append(names, f.name)
	}
	cmd.Flags().BoolVar(&deleteJob, "delete", false, "Delete the job from ARM's database")
	names = append(names, "delete")
	cmd.MarkFlagsMutuallyExclusive(names...)
	return cmd
}

// actionSummary renders one line acknowledging an action, preferring ARM's
// own message.
func actionSummary(subject, action string, res arm.ActionResult) string {
	if msg := strings.TrimSpace(res.Message); msg != "" {
		return fmt.Sprintf("%s: %s", subject, msg)
	}
	return fmt.Sprintf("%s: %s ok", subject, action)
}

func renderJob(detail arm.JobDetail, progress *arm.RipProgress, now time.Time, colorize bool) string {
	var b strings.Builder
	write := func(lines ...string) {
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	year := detail.YearManual
	if year == "" {
		year = detail.Year
	}
	length := detail.JobLength
	if format.IsJobActive(detail.Status) {
		length = format.ElapsedTime(detail.StartTime, now)
	}
	rows := [][]string{
		{"Title", detail.DisplayTitle()},
		{"Year", year},
		{"Type", format.VideoTypeLabel(detail.VideoType)},
		{"Disc", format.DiscTypeLabel(detail.DiscType)},
		{"Status", detail.Status},
		{"Drive", detail.DevPath},
		{"Started", format.FormatDateTime(detail.StartTime)},
		{"Length", length},
	}
	if progress != nil {
		pct := "N/A"
		if progress.Progress != nil {
			pct = fmt.Sprintf("%.1f%%", *progress.Progress)
		}
		rows = append(rows,
			[]string{"Stage", progress.Stage},
			[]string{"Progress", fmt.Sprintf("%s (%d/%d tracks)", pct, progress.TracksRipped, progress.TracksTotal)},
		)
	}
	if detail.Errors != "" {
		rows = append(rows, []string{"Errors", detail.Errors})
	}
	write(renderSectionHeader(fmt.Sprintf("Job %d", detail.JobID), colorize)...)
	write(renderTable([]string{"Field", "Value"}, rows, nil, colorize), "")

	if len(detail.Tracks) > 0 {
		trackRows := make([][]string, 0, len(detail.Tracks))
		for _, t := range detail.Tracks {
			feature := ""
			if t.MainFeature {
				feature = "yes"
			}
			ripped := "no"
			if t.Ripped {
				ripped = "yes"
			}
			trackRows = append(trackRows, []string{
				t.TrackNumber,
				format.FormatDuration(time.Duration(t.Length) * time.Second),
				t.AspectRatio,
				feature,
				ripped,
				t.Filename,
			})
		}
		write(renderSectionHeader("Tracks", colorize)...)
		write(renderTable(
			[]string{"#", "Length", "Aspect", "Main", "Ripped", "File"},
			trackRows,
			[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			colorize,
		), "")
	}
	return b.String()
}
