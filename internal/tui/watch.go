package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/nordmenu/internal/nordvpn"
)

// watchInterval is how often the live status view re-queries the daemon.
const watchInterval = 2 * time.Second

// StatusFetcher returns the current connection status.
type StatusFetcher func(ctx context.Context) (nordvpn.Status, error)

// statusFetchedMsg carries the result of one status query.
type statusFetchedMsg struct {
	status nordvpn.Status
	err    error
}

// watchTickMsg triggers the next status query.
type watchTickMsg time.Time

// WatchModel is the Bubble Tea model behind `status --watch`. It shows
// a spinner until the first result arrives, then redraws the status
// panel on a fixed interval until the user quits.
type WatchModel struct {
	ctx      context.Context
	fetch    StatusFetcher
	loading  *LoadingState
	status   nordvpn.Status
	err      error
	width    int
	fetched  bool
	updated  time.Time
	quitting bool
}

// NewWatchModel creates a watch model that polls via fetch.
func NewWatchModel(ctx context.Context, fetch StatusFetcher) WatchModel {
	return WatchModel{
		ctx:     ctx,
		fetch:   fetch,
		loading: NewLoadingState(),
		width:   defaultPanelWidth + borderPadding,
	}
}

// Init starts the spinner and issues the first status query.
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchCmd())
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case statusFetchedMsg:
		m.fetched = true
		m.status = msg.status
		m.err = msg.err
		m.updated = time.Now()
		return m, scheduleWatchTick()

	case watchTickMsg:
		return m, m.fetchCmd()
	}

	return m, m.loading.Update(msg)
}

// View renders the current frame.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.fetched {
		return RenderLoading(m.loading)
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(CriticalStyle.Render("Could not read status: " + m.err.Error()))
		if hint := nordvpn.Remediation(m.err); hint != "" {
			b.WriteString("\n")
			b.WriteString(SubtleStyle.Render(hint))
		}
	} else {
		b.WriteString(RenderStatusPanel(m.status, m.width))
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf(
		"Updated %s. Refreshing every %s. Press q to quit.",
		m.updated.Format("15:04:05"), watchInterval,
	)))
	b.WriteString("\n")
	return b.String()
}

func (m WatchModel) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.fetch(m.ctx)
		return statusFetchedMsg{status: status, err: err}
	}
}

func scheduleWatchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

// RunWatch runs the live status view until the user quits or the
// context is canceled.
func RunWatch(ctx context.Context, fetch StatusFetcher) error {
	program := tea.NewProgram(NewWatchModel(ctx, fetch), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("status watch failed: %w", err)
	}
	return nil
}
