package awards

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	achievementdto "pento/internal/modules/achievement/dto"
	"pento/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AchievementPort interface {
	List(ctx context.Context) ([]achievementdto.StatusOutput, error)
	Recent(ctx context.Context, acknowledge bool) ([]achievementdto.NotificationOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type AwardsLoadedMsg struct {
	Statuses []achievementdto.StatusOutput
	Recent   []achievementdto.NotificationOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     AchievementPort
	view     viewport.Model
	statuses []achievementdto.StatusOutput
	recent   []achievementdto.NotificationOutput
	loading  bool
	width    int
	height   int
}

func New(port AchievementPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{port: port, view: vp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd(false)
}

// Reload refreshes the board and acknowledges pending notifications, so an
// unlock banner is shown once.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd(true)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = m.width - 2
		m.view.Height = m.height - 2

	case AwardsLoadedMsg:
		m.loading = false
		if msg.Err == nil {
			m.statuses = msg.Statuses
			m.recent = msg.Recent
			m.view.SetContent(m.renderBoard())
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Loading achievements…")
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.view.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderBoard() string {
	var sb strings.Builder

	if len(m.recent) > 0 {
		sb.WriteString(theme.Hot.Render("New unlocks!") + "\n")
		for _, n := range m.recent {
			sb.WriteString("  " + n.Icon + " " + n.Name + "\n")
		}
		sb.WriteString("\n")
	}

	unlocked := 0
	byCategory := map[string][]achievementdto.StatusOutput{}
	var order []string
	for _, s := range m.statuses {
		if s.Unlocked {
			unlocked++
		}
		if _, seen := byCategory[s.Category]; !seen {
			order = append(order, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	sb.WriteString(theme.Title.Render("Achievements"))
	sb.WriteString(theme.Muted.Render("  " + progressLabel(unlocked, len(m.statuses))))
	sb.WriteString("\n\n")

	for _, category := range order {
		sb.WriteString(theme.Muted.Render(strings.ToUpper(category)) + "\n")
		for _, s := range byCategory[category] {
			line := "  " + s.Icon + " " + s.Name + "  " + theme.Muted.Render(s.Description)
			if s.Unlocked {
				line = theme.Done.Render("  "+s.Icon+" "+s.Name) + "  " +
					theme.Muted.Render(s.Description+"  "+s.UnlockedAt.Format("2006-01-02"))
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func progressLabel(unlocked, total int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("●", unlocked))
	sb.WriteString(strings.Repeat("○", total-unlocked))
	return sb.String()
}

func (m Model) loadCmd(acknowledge bool) tea.Cmd {
	return func() tea.Msg {
		statuses, err := m.port.List(context.Background())
		if err != nil {
			return AwardsLoadedMsg{Err: err}
		}
		recent, err := m.port.Recent(context.Background(), acknowledge)
		if err != nil {
			return AwardsLoadedMsg{Err: err}
		}
		return AwardsLoadedMsg{Statuses: statuses, Recent: recent}
	}
}
