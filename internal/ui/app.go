package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	"github.com/five82/armview/internal/poll"
	"github.com/five82/armview/internal/prefs"
	"github.com/five82/armview/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Feeds     *state.Feeds
	Focus     *poll.Toggle
	Prefs     prefs.Prefs
	PrefsPath string // empty saves to the default location
	ARMURL    string
	LogPath   string
	Logger    *zap.Logger
	Clock     clockz.Clock
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	feeds     *state.Feeds
	focus     *poll.Toggle
	bridge    *bridge
	keys      keyMap
	prefs     prefs.Prefs
	prefsPath string
	armURL    string
	logPath   string
	logger    *zap.Logger
	clock     clockz.Clock

	theme       Theme
	currentView View
	snap        snapshot
	table       table.Model
	spinner     spinner.Model

	width  int
	height int
	ready  bool

	showHelp bool
	notice   string
}

// New creates a new Bubble Tea model. It subscribes to every feed; call
// Close when the program exits.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockz.RealClock
	}
	m := Model{
		ctx:         ctx,
		feeds:       opts.Feeds,
		focus:       opts.Focus,
		bridge:      newBridge(opts.Feeds),
		keys:        DefaultKeyMap(),
		prefs:       opts.Prefs,
		prefsPath:   opts.PrefsPath,
		armURL:      opts.ARMURL,
		logPath:     opts.LogPath,
		logger:      logger.Named("ui"),
		clock:       clock,
		currentView: ViewDashboard,
		snap:        takeSnapshot(opts.Feeds),
		table:       table.New(table.WithFocused(true)),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.applyTheme(ResolveTheme(opts.Prefs.Scheme, opts.Prefs.Mode))
	return m
}

// Close drops the feed subscriptions.
func (m Model) Close() {
	m.bridge.Close()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.bridge.wait(), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.syncTable()
		return m, nil

	case tea.FocusMsg:
		if m.focus != nil {
			m.focus.Set(true)
		}
		return m, nil

	case tea.BlurMsg:
		if m.focus != nil {
			m.focus.Set(false)
		}
		return m, nil

	case feedMsg:
		m.snap = takeSnapshot(m.feeds)
		m.syncTable()
		return m, m.bridge.wait()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.CycleScheme):
		m.prefs.Scheme = NextScheme(m.theme.SchemeID)
		m.applyTheme(ResolveTheme(m.prefs.Scheme, m.prefs.Mode))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.ToggleMode):
		m.prefs.Mode = ToggleMode(m.prefs.Mode)
		m.applyTheme(ResolveTheme(m.prefs.Scheme, m.prefs.Mode))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.NextView):
		m.switchView(m.currentView.next())
		return m, nil
	case key.Matches(msg, m.keys.PrevView):
		m.switchView(m.currentView.prev())
		return m, nil
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ViewDashboard):
		m.switchView(ViewDashboard)
		return m, nil
	case key.Matches(msg, m.keys.ViewDrives):
		m.switchView(ViewDrives)
		return m, nil
	case key.Matches(msg, m.keys.ViewJobs):
		m.switchView(ViewJobs)
		return m, nil
	case key.Matches(msg, m.keys.ViewNotifications):
		m.switchView(ViewNotifications)
		return m, nil
	case key.Matches(msg, m.keys.ViewTranscoder):
		m.switchView(ViewTranscoder)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// switchView stops the polling of the view being left and starts the one
// being entered. The dashboard feed is never stopped here.
func (m *Model) switchView(v View) {
	if v == m.currentView {
		return
	}
	if m.feeds != nil {
		if m.currentView != ViewDashboard {
			if r := m.feeds.Feed(m.currentView.Feed()); r != nil {
				r.Stop()
			}
		}
		if v != ViewDashboard {
			if r := m.feeds.Feed(v.Feed()); r != nil {
				r.Start()
			}
		}
	}
	m.currentView = v
	m.table.SetCursor(0)
	m.syncTable()
}

// refreshCmd refreshes the dashboard and the current view's feed.
func (m Model) refreshCmd() tea.Cmd {
	if m.feeds == nil {
		return nil
	}
	ctx := m.ctx
	refresh := func(r state.Runner) tea.Cmd {
		return func() tea.Msg {
			r.Refresh(ctx)
			return nil
		}
	}
	cmds := []tea.Cmd{refresh(m.feeds.Dashboard)}
	if m.currentView != ViewDashboard {
		if r := m.feeds.Feed(m.currentView.Feed()); r != nil {
			cmds = append(cmds, refresh(r))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.prefs.Scheme = t.SchemeID
	if !GetScheme(t.SchemeID).ForceDark {
		m.prefs.Mode = t.Mode
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(t.Accent)).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(lipgloss.Color(t.Text))
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(t.SelectionText)).
		Background(lipgloss.Color(t.SelectionBg)).
		Bold(false)
	m.table.SetStyles(ts)
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.notice = fmt.Sprintf("save prefs: %v", err)
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
		return
	}
	m.notice = ""
}

// syncTable loads the current view's columns and rows into the table.
func (m *Model) syncTable() {
	width := m.width
	if width <= 0 {
		width = LayoutCompactWidth
	}
	now := m.clock.Now()

	var cols []table.Column
	var rows []table.Row
	switch m.currentView {
	case ViewDashboard:
		cols, rows = activeJobColumns(width), activeJobRows(m.snap.Dashboard, now)
	case ViewDrives:
		cols, rows = driveColumns(width), driveRows(m.snap.Drives)
	case ViewJobs:
		cols, rows = jobColumns(width), jobRows(m.snap.Jobs.Jobs, now)
	case ViewNotifications:
		cols, rows = notificationColumns(width), notificationRows(m.snap.Notifications, now)
	case ViewTranscoder:
		cols, rows = transcodeColumns(width), transcodeRows(m.snap.Dashboard.ActiveTranscodes, now)
	}

	// Rows must be cleared first; the table renders existing rows against
	// the new columns.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetWidth(width)
	m.table.SetHeight(m.tableHeight())
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// tableHeight is the space left for the table after the fixed regions.
func (m Model) tableHeight() int {
	h := m.height - chromeHeight
	if banner := m.renderBanner(); banner != "" {
		h -= lipgloss.Height(banner)
	}
	if summary := m.renderSummary(); summary != "" {
		h -= lipgloss.Height(summary)
	}
	if h < 3 {
		h = 3
	}
	return h
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	parts := []string{m.renderHeader(), m.renderTabs()}
	if banner := m.renderBanner(); banner != "" {
		parts = append(parts, banner)
	}
	if summary := m.renderSummary(); summary != "" {
		parts = append(parts, summary)
	}
	parts = append(parts, m.renderContent(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the Bubble Tea program and blocks until it exits. The dashboard
// feed runs for the life of the program; every feed is stopped on return.
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()

	if opts.Feeds != nil {
		opts.Feeds.Dashboard.Start()
		defer opts.Feeds.StopAll()
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
