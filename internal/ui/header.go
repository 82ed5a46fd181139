package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/armview/internal/format"
	"github.com/five82/armview/internal/state"
)

// renderHeader renders the status bar from the dashboard feed.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	d := m.snap.Dashboard
	dash := m.snap.Status(state.FeedDashboard)

	parts := []string{bg.Render("armview", styles.Logo)}

	switch {
	case m.snap.Offline:
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	case !dash.Health.HasData():
		parts = append(parts, bg.Render("● CONNECTING", styles.WarningText.Bold(true)))
	case !d.DBAvailable:
		parts = append(parts, bg.Render("● DB UNAVAILABLE", styles.DangerText))
	default:
		parts = append(parts, bg.Render("● ONLINE", styles.SuccessText))
	}

	if dash.Health.HasData() {
		ripping, ripStyle := "on", styles.Text
		if !d.RippingEnabled {
			ripping, ripStyle = "paused", styles.WarningText
		}
		notifStyle := styles.Text
		if d.NotificationCount > 0 {
			notifStyle = styles.WarningText
		}
		transcoder, tcStyle := "online", styles.Text
		if !d.TranscoderOnline {
			transcoder, tcStyle = "offline", styles.MutedText
		}

		label := func(full, short string) string {
			if compact {
				return short
			}
			return full
		}
		parts = append(parts,
			bg.Render(label("Ripping:", "Rip:"), styles.MutedText)+bg.Space()+bg.Render(ripping, ripStyle),
			bg.Render(label("Active:", "A:"), styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(d.ActiveJobs)), styles.AccentText),
			bg.Render(label("Drives:", "D:"), styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", d.DrivesOnline), styles.Text),
			bg.Render(label("Notifications:", "N:"), styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", d.NotificationCount), notifStyle),
			bg.Render(label("Transcoder:", "T:"), styles.MutedText)+bg.Space()+bg.Render(transcoder, tcStyle),
		)
	}

	if updated := m.formatUpdated(dash); updated != "" {
		parts = append(parts, bg.Render(updated, styles.MutedText))
	}
	if m.snap.AnyLoading() {
		parts = append(parts, bg.Render(m.spinner.View(), lipgloss.NewStyle()))
	}
	if m.focus != nil && !m.focus.Active() {
		parts = append(parts, bg.Render("paused", styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) formatUpdated(st feedStatus) string {
	if !st.Health.HasData() {
		return ""
	}
	ago := m.clock.Now().Sub(st.Health.LastSuccess)
	if ago < time.Second {
		return "updated just now"
	}
	return "updated " + format.FormatDuration(ago) + " ago"
}

// renderTabs renders the view selector.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	tabs := make([]string, 0, len(viewOrder))
	for i, v := range viewOrder {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if v == ViewNotifications && m.snap.Dashboard.NotificationCount > 0 {
			label += fmt.Sprintf(" (%d)", m.snap.Dashboard.NotificationCount)
		}
		if v == m.currentView {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(tabs, " "))
}

// renderBanner reports refresh failures above the last good data. It is
// empty while every visible feed is healthy.
func (m Model) renderBanner() string {
	styles := m.theme.Styles()
	var lines []string

	if m.snap.Offline {
		dash := m.snap.Status(state.FeedDashboard)
		lines = append(lines, fmt.Sprintf("ARM API unreachable at %s (%d failed attempts): %s",
			orDash(m.armURL), dash.Health.ConsecutiveFailures, dash.Err))
	}

	feeds := []string{state.FeedDashboard}
	if m.currentView != ViewDashboard && m.currentView.Feed() != state.FeedDashboard {
		feeds = append(feeds, m.currentView.Feed())
	}
	for _, name := range feeds {
		st := m.snap.Status(name)
		if st.Err == "" || (name == state.FeedDashboard && m.snap.Offline) {
			continue
		}
		line := fmt.Sprintf("%s refresh failed: %s", name, st.Err)
		if st.Health.HasData() {
			line += " · showing data from " + format.FormatDuration(m.clock.Now().Sub(st.Health.LastSuccess)) + " ago"
		} else {
			line += " · no data yet"
		}
		lines = append(lines, line)
	}

	if m.notice != "" {
		lines = append(lines, m.notice)
	}
	if len(lines) == 0 {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = LayoutCompactWidth
	}
	for i, line := range lines {
		lines[i] = styles.Banner.Width(width).Render(format.Truncate(line, width-2))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderSummary renders the cards shown above the table on views that have them.
func (m Model) renderSummary() string {
	switch m.currentView {
	case ViewDashboard:
		return m.renderDashboardSummary()
	case ViewJobs:
		return m.renderJobsSummary()
	case ViewTranscoder:
		return m.renderTranscoderSummary()
	default:
		return ""
	}
}

func (m Model) renderDashboardSummary() string {
	styles := m.theme.Styles()
	d := m.snap.Dashboard

	system := "unknown host"
	if d.SystemInfo != nil {
		system = orDash(d.SystemInfo.Name)
		if d.SystemInfo.CPU != "" {
			system += " · " + d.SystemInfo.CPU
		}
		if d.SystemInfo.MemTotal > 0 {
			system += fmt.Sprintf(" · %.1f GB", d.SystemInfo.MemTotal)
		}
	}
	var load []string
	if cpu, ok := statPercent(d.SystemStats, "cpu_percent"); ok {
		load = append(load, fmt.Sprintf("CPU %.0f%%", cpu))
	}
	if temp, ok := statPercent(d.SystemStats, "cpu_temp"); ok {
		load = append(load, fmt.Sprintf("%.0f°C", temp))
	}
	if mem, ok := statPercent(d.SystemStats, "memory.percent"); ok {
		load = append(load, fmt.Sprintf("Mem %.0f%%", mem))
	}
	loadLine := "no host stats"
	if len(load) > 0 {
		loadLine = strings.Join(load, " · ")
	}

	tc := "offline"
	if d.TranscoderOnline {
		tc = "online"
		if s := d.TranscoderStats; s != nil {
			tc = fmt.Sprintf("%d pending · %d active", s.Pending, s.Processing)
		}
	}

	cards := []string{
		m.card("System", system, loadLine),
		m.card("Drives", fmt.Sprintf("%d online", d.DrivesOnline), fmt.Sprintf("%d ripping", len(d.ActiveJobs))),
		m.card("Transcoder", tc, fmt.Sprintf("%d transcoding", len(d.ActiveTranscodes))),
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		styles.AccentText.Bold(true).Render("Active jobs"),
	)
}

func (m Model) renderJobsSummary() string {
	styles := m.theme.Styles()
	j := m.snap.Jobs
	pages := j.Pages
	if pages < 1 {
		pages = 1
	}
	return styles.MutedText.Render(fmt.Sprintf("Page %d of %d · %d jobs", j.Page, pages, j.Total))
}

func (m Model) renderTranscoderSummary() string {
	styles := m.theme.Styles()
	t := m.snap.Transcoder
	if !t.Online {
		return styles.WarningText.Render("Transcoder offline")
	}
	if t.Stats == nil {
		return styles.MutedText.Render("Transcoder online · no stats reported")
	}
	s := t.Stats
	worker := "worker idle"
	if s.WorkerRunning {
		worker = "worker running"
		if s.CurrentJob != nil {
			worker += fmt.Sprintf(" (job %d)", *s.CurrentJob)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Queue", fmt.Sprintf("%d pending · %d processing", s.Pending, s.Processing), worker),
		m.card("History", fmt.Sprintf("%d completed", s.Completed), fmt.Sprintf("%d failed · %d cancelled", s.Failed, s.Cancelled)),
	)
}

// card renders a bordered two-line panel.
func (m Model) card(title, primary, secondary string) string {
	styles := m.theme.Styles()
	width := 32
	if m.width >= LayoutWideWidth {
		width = 42
	}
	body := styles.AccentText.Bold(true).Render(title) + "\n" +
		styles.Text.Render(format.Truncate(primary, width-4)) + "\n" +
		styles.MutedText.Render(format.Truncate(secondary, width-4))
	return styles.Panel.Width(width).Render(body)
}

// renderContent renders the table, or a placeholder when it has no rows.
func (m Model) renderContent() string {
	if len(m.table.Rows()) > 0 {
		return m.table.View()
	}
	styles := m.theme.Styles()
	st := m.snap.Status(m.currentView.Feed())
	msg := "Nothing to show"
	switch {
	case st.Loading && !st.Health.HasData():
		msg = m.spinner.View() + " Loading " + strings.ToLower(m.currentView.Title()) + "..."
	case m.currentView == ViewDashboard:
		msg = "No active jobs"
	case m.currentView == ViewTranscoder:
		msg = "No active transcodes"
	case m.currentView == ViewDrives:
		msg = "No drives reported"
	case m.currentView == ViewNotifications:
		msg = "No notifications"
	case m.currentView == ViewJobs:
		msg = "No jobs"
	}
	return lipgloss.Place(m.width, m.tableHeight(), lipgloss.Center, lipgloss.Center, styles.MutedText.Render(msg))
}

// renderFooter renders the key hints and feed cadence.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.AccentText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}

	right := m.theme.Label
	if m.feeds != nil {
		if r := m.feeds.Feed(m.currentView.Feed()); r != nil {
			right = fmt.Sprintf("%s · %s every %s", m.theme.Label, r.Name(), format.FormatDuration(r.Interval()))
		}
	}
	if m.logPath != "" && m.width >= LayoutWideWidth {
		right += " · log " + truncateMiddle(m.logPath, 40)
	}

	left := bg.Join(hints, "  ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	line := left + bg.Spaces(gap) + bg.Render(right, styles.FaintText)
	return bg.FillLine(line, m.width)
}
