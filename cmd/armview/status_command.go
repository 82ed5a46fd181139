package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/armview/internal/app"
	"github.com/five82/armview/internal/arm"
	"github.com/five82/armview/internal/format"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print a one-shot summary of ARM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.client()
			if err != nil {
				return err
			}
			ov, err := app.FetchOverview(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("ARM API unreachable at %s: %w", client.BaseURL(), err)
			}
			if jsonOutput {
				return writeJSON(cmd, ov)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderStatus(client.BaseURL(), ov, time.Now(), shouldColorize(out)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderStatus(baseURL string, ov app.Overview, now time.Time, colorize bool) string {
	var b strings.Builder
	section := func(title, body string) {
		for _, line := range renderSectionHeader(title, colorize) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	section("ARM", renderTable(
		[]string{"Field", "Value"},
		summaryRows(baseURL, ov.Dashboard),
		nil,
		colorize,
	))

	if len(ov.Dashboard.ActiveJobs) > 0 {
		rows := make([][]string, 0, len(ov.Dashboard.ActiveJobs))
		for _, j := range ov.Dashboard.ActiveJobs {
			rows = append(rows, []string{
				strconv.FormatInt(j.JobID, 10),
				j.DisplayTitle(),
				format.VideoTypeLabel(j.VideoType),
				j.Status,
				format.ElapsedTime(j.StartTime, now),
			})
		}
		section("Active Jobs", renderTable(
			[]string{"ID", "Title", "Type", "Status", "Elapsed"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
			colorize,
		))
	}

	if len(ov.Drives) > 0 {
		rows := make([][]string, 0, len(ov.Drives))
		for _, d := range ov.Drives {
			current := "idle"
			if d.CurrentJob != nil {
				current = d.CurrentJob.DisplayTitle()
			} else if d.JobIDCurrent != nil {
				current = "job " + strconv.FormatInt(*d.JobIDCurrent, 10)
			}
			rows = append(rows, []string{d.Name, strings.TrimSpace(d.Maker + " " + d.Model), d.Mount, current})
		}
		section("Drives", renderTable([]string{"Name", "Model", "Mount", "Current"}, rows, nil, colorize))
	}

	if len(ov.Notifications) > 0 {
		notes := append([]arm.Notification(nil), ov.Notifications...)
		sort.SliceStable(notes, func(i, j int) bool {
			return arm.ParseTime(notes[i].TriggerTime).After(arm.ParseTime(notes[j].TriggerTime))
		})
		if len(notes) > maxStatusNotifications {
			notes = notes[:maxStatusNotifications]
		}
		rows := make([][]string, 0, len(notes))
		for _, n := range notes {
			rows = append(rows, []string{format.TimeAgo(n.TriggerTime, now), n.Title, format.Truncate(n.Message, 60)})
		}
		section("Notifications", renderTable([]string{"When", "Title", "Message"}, rows, nil, colorize))
	}

	return b.String()
}

const maxStatusNotifications = 10

func summaryRows(baseURL string, d arm.DashboardData) [][]string {
	rows := [][]string{
		{"URL", baseURL},
		{"Database", availability(d.DBAvailable, "available", "unavailable")},
		{"Ripping", availability(d.RippingEnabled, "enabled", "paused")},
		{"Active jobs", strconv.Itoa(len(d.ActiveJobs))},
		{"Drives online", strconv.Itoa(d.DrivesOnline)},
		{"Notifications", strconv.Itoa(d.NotificationCount)},
	}
	transcoder := availability(d.TranscoderOnline, "online", "offline")
	if d.TranscoderOnline && d.TranscoderStats != nil {
		s := d.TranscoderStats
		transcoder = fmt.Sprintf("online (%d pending, %d processing, %d failed)", s.Pending, s.Processing, s.Failed)
	}
	rows = append(rows, []string{"Transcoder", transcoder})
	if d.SystemInfo != nil && d.SystemInfo.Name != "" {
		rows = append(rows, []string{"Host", d.SystemInfo.Name})
	}
	return rows
}

func availability(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
