package history

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "pento/internal/modules/journal/dto"
	"pento/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	History(ctx context.Context, limit int) ([]journaldto.SessionOutput, error)
	GetSession(ctx context.Context, id string) (journaldto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SessionsLoadedMsg struct {
	Sessions []journaldto.SessionOutput
	Err      error
}

type SessionLoadedMsg struct {
	Session journaldto.SessionOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session journaldto.SessionOutput
}

func (i sessionItem) Title() string {
	return i.session.CompletedAt.Format("2006-01-02 15:04") + "  " + i.session.SenseiID
}
func (i sessionItem) Description() string {
	return fmt.Sprintf("%d words  %s", i.session.WordCount, i.session.PromptText)
}
func (i sessionItem) FilterValue() string { return i.session.PromptText }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    HistoryPort
	list    list.Model
	session journaldto.SessionOutput
	preview viewport.Model
	loading bool
	width   int
	height  int
}

func New(port HistoryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "History"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadSessionsCmd()
}

// Reload refreshes the session list, used after a completion elsewhere.
func (m Model) Reload() tea.Cmd {
	return m.loadSessionsCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SessionsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "History — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Sessions) > 0 {
			cmds = append(cmds, m.loadSessionCmd(msg.Sessions[0].ID))
		}

	case SessionLoadedMsg:
		if msg.Err == nil {
			m.session = msg.Session
			m.preview.SetContent(m.renderSession())
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(sessionItem); ok {
				cmds = append(cmds, m.loadSessionCmd(item.session.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Loading history…")
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("No sessions yet. Start one from the Senseis tab."))
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderSession() string {
	s := m.session
	if s.ID == "" {
		return theme.Muted.Render("Select a session")
	}
	out := theme.Title.Render(s.PromptText) + "\n\n"
	out += theme.Muted.Render("sensei:   ") + s.SenseiID + "\n"
	out += theme.Muted.Render("words:    ") + fmt.Sprintf("%d", s.WordCount) + "\n"
	out += theme.Muted.Render("duration: ") + (time.Duration(s.DurationSec) * time.Second).String() + "\n"
	out += theme.Muted.Render("finished: ") + s.CompletedAt.Format(time.RFC3339) + "\n\n"
	out += s.Content
	return out
}

func (m Model) loadSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.History(context.Background(), 0)
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) loadSessionCmd(id string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.GetSession(context.Background(), id)
		return SessionLoadedMsg{Session: session, Err: err}
	}
}
