package senseis

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "pento/internal/modules/catalog/dto"
	"pento/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListSenseis(ctx context.Context) ([]catalogdto.SenseiOutput, error)
	GetSensei(ctx context.Context, id string) (catalogdto.SenseiDetailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SenseisLoadedMsg struct {
	Senseis []catalogdto.SenseiOutput
	Err     error
}

type DetailLoadedMsg struct {
	Detail catalogdto.SenseiDetailOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type senseiItem struct {
	sensei catalogdto.SenseiOutput
}

func (i senseiItem) Title() string { return i.sensei.Name + " " + i.sensei.Kanji }
func (i senseiItem) Description() string {
	return fmt.Sprintf("%s  %d prompts", i.sensei.Meaning, i.sensei.PromptCount)
}
func (i senseiItem) FilterValue() string { return i.sensei.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    CatalogPort
	list    list.Model
	detail  catalogdto.SenseiDetailOutput
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Senseis"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSenseisCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SenseisLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Senseis — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Senseis))
		for i, s := range msg.Senseis {
			items[i] = senseiItem{sensei: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Senseis) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Senseis[0].ID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(senseiItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.sensei.ID))
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
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading senseis…")
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

// SelectedSenseiID returns the current selection's id, if any.
func (m Model) SelectedSenseiID() (string, bool) {
	if item, ok := m.list.SelectedItem().(senseiItem); ok {
		return item.sensei.ID, true
	}
	return "", false
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

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Select a sensei")
	}
	out := theme.Title.Render(d.Name+" "+d.Kanji) + "\n"
	out += theme.Muted.Render(d.Meaning) + "\n\n"
	out += d.Philosophy + "\n\n"
	out += theme.Muted.Render("sample prompt:") + "\n" + d.SamplePrompt + "\n\n"
	out += theme.Muted.Render("enter: start a session with this sensei")
	return out
}

func (m Model) loadSenseisCmd() tea.Cmd {
	return func() tea.Msg {
		senseis, err := m.port.ListSenseis(context.Background())
		return SenseisLoadedMsg{Senseis: senseis, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.GetSensei(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
