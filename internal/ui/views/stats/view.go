package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	billingdto "pento/internal/modules/billing/dto"
	journaldto "pento/internal/modules/journal/dto"
	"pento/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type StatsPort interface {
	StatsDetail(ctx context.Context) (journaldto.StatsDetailOutput, error)
}

type PlanPort interface {
	Plan() (billingdto.PlanOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatsLoadedMsg struct {
	Detail journaldto.StatsDetailOutput
	Plan   billingdto.PlanOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	stats   StatsPort
	billing PlanPort
	view    viewport.Model
	detail  journaldto.StatsDetailOutput
	plan    billingdto.PlanOutput
	loading bool
	width   int
	height  int
}

func New(stats StatsPort, billing PlanPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{stats: stats, billing: billing, view: vp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Reload refreshes the dashboard after a completed session.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = m.width - 2
		m.view.Height = m.height - 2

	case StatsLoadedMsg:
		m.loading = false
		if msg.Err == nil {
			m.detail = msg.Detail
			m.plan = msg.Plan
			m.view.SetContent(m.renderDashboard())
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Loading stats…")
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

func (m Model) renderDashboard() string {
	s := m.detail.Stats
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("Dojo record") + "\n\n")
	sb.WriteString(fmt.Sprintf("sessions   %d\n", s.TotalSessions))
	sb.WriteString(fmt.Sprintf("words      %d\n", s.TotalWords))
	sb.WriteString(fmt.Sprintf("minutes    %d\n", s.TotalMinutes))
	sb.WriteString("streak     " + theme.Streak.Render(fmt.Sprintf("%d day(s)", s.CurrentStreak)))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("  (longest %d)", s.LongestStreak)) + "\n\n")

	if len(m.detail.SenseiTotals) > 0 {
		sb.WriteString(theme.Muted.Render("SESSIONS BY SENSEI") + "\n")
		for _, t := range m.detail.SenseiTotals {
			sb.WriteString(fmt.Sprintf("  %-8s %s %d\n", t.SenseiID, bar(t.Sessions, 30), t.Sessions))
		}
		sb.WriteString("\n")
	}

	if len(m.detail.RecentDays) > 0 {
		sb.WriteString(theme.Muted.Render("RECENT DAYS") + "\n")
		for _, d := range m.detail.RecentDays {
			sb.WriteString(fmt.Sprintf("  %s  %4d words  %d session(s)\n", d.Day, d.Words, d.Sessions))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Muted.Render("PLAN") + "\n")
	sb.WriteString("  " + theme.Hot.Render(m.plan.Status))
	if m.plan.Remaining >= 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  %d free session(s) left", m.plan.Remaining)))
	} else {
		sb.WriteString(theme.Muted.Render("  unlimited sessions"))
	}
	sb.WriteString("\n")
	return sb.String()
}

func bar(n, max int) string {
	if n > max {
		n = max
	}
	return theme.Done.Render(strings.Repeat("█", n))
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		detail, err := m.stats.StatsDetail(context.Background())
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		plan, err := m.billing.Plan()
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		return StatsLoadedMsg{Detail: detail, Plan: plan}
	}
}
