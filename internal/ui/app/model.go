package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	achievementdto "pento/internal/modules/achievement/dto"
	billingdto "pento/internal/modules/billing/dto"
	catalogdto "pento/internal/modules/catalog/dto"
	journaldto "pento/internal/modules/journal/dto"
	"pento/internal/ui/components"
	"pento/internal/ui/theme"
	awardsview "pento/internal/ui/views/awards"
	dojoview "pento/internal/ui/views/dojo"
	historyview "pento/internal/ui/views/history"
	senseisview "pento/internal/ui/views/senseis"
	statsview "pento/internal/ui/views/stats"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	ListSenseis(ctx context.Context) ([]catalogdto.SenseiOutput, error)
	GetSensei(ctx context.Context, id string) (catalogdto.SenseiDetailOutput, error)
}

type journalPort interface {
	Start(ctx context.Context, input journaldto.StartInput) (journaldto.StartOutput, error)
	Write(ctx context.Context, content string) (journaldto.DraftOutput, error)
	Complete(ctx context.Context, input journaldto.CompleteInput) (journaldto.CompleteOutput, error)
	Discard(ctx context.Context) error
	Current(ctx context.Context) (journaldto.DraftOutput, error)
	StatsDetail(ctx context.Context) (journaldto.StatsDetailOutput, error)
	History(ctx context.Context, limit int) ([]journaldto.SessionOutput, error)
	GetSession(ctx context.Context, id string) (journaldto.SessionOutput, error)
	ClearHistory(ctx context.Context) error
	Reindex(ctx context.Context) error
}

type achievementPort interface {
	List(ctx context.Context) ([]achievementdto.StatusOutput, error)
	Recent(ctx context.Context, acknowledge bool) ([]achievementdto.NotificationOutput, error)
}

type billingPort interface {
	Plan() (billingdto.PlanOutput, error)
	Upgrade(ctx context.Context) (billingdto.CheckoutOutput, error)
	Cancel(ctx context.Context) error
	Reactivate() error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabSenseis tabID = iota
	tabDojo
	tabHistory
	tabAwards
	tabStats
	tabCount
)

var tabLabels = [tabCount]string{
	"Senseis", "Dojo", "History", "Awards", "Stats",
}

// ─── async messages ───────────────────────────────────────────────────────────

type opDoneMsg struct {
	label string
	err   error
}

type upgradeDoneMsg struct {
	out billingdto.CheckoutOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Save    key.Binding
	Finish  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start session")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save draft")),
		Finish:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "complete session")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Start},
		{k.Save, k.Finish},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	vaultPath string

	// ports used at this orchestration level only
	journal journalPort
	billing billingPort

	// sub-views (one per tab)
	senseiView  senseisview.Model
	dojoView    dojoview.Model
	historyView historyview.Model
	awardView   awardsview.Model
	statsView   statsview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	vaultPath string,
	catalog catalogPort,
	journal journalPort,
	achievements achievementPort,
	billing billingPort,
) Model {
	return Model{
		vaultPath:   vaultPath,
		journal:     journal,
		billing:     billing,
		senseiView:  senseisview.New(catalogPortBridge{p: catalog}),
		dojoView:    dojoview.New(dojoPortBridge{p: journal}),
		historyView: historyview.New(historyPortBridge{p: journal}),
		awardView:   awardsview.New(achievementPortBridge{p: achievements}),
		statsView:   statsview.New(statsPortBridge{p: journal}, planPortBridge{p: billing}),
		activeTab:   tabSenseis,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.senseiView.Init(),
		m.dojoView.Init(),
		m.historyView.Init(),
		m.awardView.Init(),
		m.statsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// Session lifecycle messages are produced by the dojo view but bubble up
	// through the top level so we can switch tabs and refresh siblings.
	case dojoview.SessionStartedMsg:
		if msg.Err != nil {
			m.status = "session start failed: " + msg.Err.Error()
		} else {
			m.activeTab = tabDojo
			m.status = "session started with " + msg.Output.SenseiID
		}
		var cmd tea.Cmd
		m.dojoView, cmd = m.dojoView.Update(msg)
		return m, cmd

	case dojoview.SessionCompletedMsg:
		var cmd tea.Cmd
		m.dojoView, cmd = m.dojoView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			m.status = fmt.Sprintf("session complete: %d words, streak %d",
				msg.Output.WordCount, msg.Output.Stats.CurrentStreak)
			if len(msg.Output.NewAchievements) > 0 {
				m.status += "  unlocked: " + strings.Join(msg.Output.NewAchievements, ", ")
				m.activeTab = tabAwards
			}
			cmds = append(cmds,
				m.historyView.Reload(),
				m.awardView.Reload(),
				m.statsView.Reload(),
			)
		}
		return m, tea.Batch(cmds...)

	case opDoneMsg:
		if msg.err != nil {
			m.status = msg.label + " failed: " + msg.err.Error()
		} else {
			m.status = msg.label + " done"
			cmds = append(cmds, m.historyView.Reload(), m.statsView.Reload())
		}

	case upgradeDoneMsg:
		if msg.err != nil {
			m.status = "upgrade failed: " + msg.err.Error()
		} else {
			m.status = "checkout: " + msg.out.URL
			cmds = append(cmds, m.statsView.Reload())
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when the editor or a search filter owns the keys.
		if m.editorActive() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			break
		}
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "enter":
			if m.activeTab == tabSenseis {
				if id, ok := m.senseiView.SelectedSenseiID(); ok {
					cmds = append(cmds, m.dojoView.StartSession(id, ""))
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabSenseis:
		m.senseiView, tabCmd = m.senseiView.Update(msg)
	case tabDojo:
		m.dojoView, tabCmd = m.dojoView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	case tabAwards:
		m.awardView, tabCmd = m.awardView.Update(msg)
	case tabStats:
		m.statsView, tabCmd = m.statsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabSenseis:
		return m.senseiView.View()
	case tabDojo:
		return m.dojoView.View()
	case tabHistory:
		return m.historyView.View()
	case tabAwards:
		return m.awardView.View()
	case tabStats:
		return m.statsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "pento  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.dojoView.Active() {
		left = theme.Hot.Render("● writing") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "session:start":
		senseiID := ""
		modeID := ""
		if len(parts) >= 2 {
			senseiID = parts[1]
		} else if id, ok := m.senseiView.SelectedSenseiID(); ok {
			senseiID = id
		}
		if len(parts) >= 3 {
			modeID = parts[2]
		}
		if senseiID == "" {
			m.status = "no sensei selected"
			return m, nil
		}
		return m, m.dojoView.StartSession(senseiID, modeID)

	case "session:discard":
		m.activeTab = tabDojo
		return m, func() tea.Msg {
			return dojoview.DraftDiscardedMsg{Err: m.journal.Discard(context.Background())}
		}

	case "history:clear":
		return m, m.opCmd("history clear", func(ctx context.Context) error {
			return m.journal.ClearHistory(ctx)
		})

	case "billing:upgrade":
		return m, func() tea.Msg {
			out, err := m.billing.Upgrade(context.Background())
			return upgradeDoneMsg{out: out, err: err}
		}

	case "billing:cancel":
		return m, m.opCmd("cancel", func(ctx context.Context) error {
			return m.billing.Cancel(ctx)
		})

	case "billing:reactivate":
		return m, m.opCmd("reactivate", func(context.Context) error {
			return m.billing.Reactivate()
		})

	case "reindex":
		return m, m.opCmd("reindex", func(ctx context.Context) error {
			return m.journal.Reindex(ctx)
		})

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// editorActive reports whether the dojo editor owns the keyboard, in which
// case global single-key bindings must yield to allow free typing.
func (m Model) editorActive() bool {
	return m.activeTab == tabDojo && m.dojoView.Active()
}

// subViewFiltering reports whether the active tab's list filter is open.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabSenseis:
		return m.senseiView.Filtering()
	case tabHistory:
		return m.historyView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.senseiView, _ = m.senseiView.Update(sz)
	m.dojoView, _ = m.dojoView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
	m.awardView, _ = m.awardView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
}

func (m Model) opCmd(label string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{label: label, err: fn(context.Background())}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type catalogPortBridge struct{ p catalogPort }

func (b catalogPortBridge) ListSenseis(ctx context.Context) ([]catalogdto.SenseiOutput, error) {
	return b.p.ListSenseis(ctx)
}
func (b catalogPortBridge) GetSensei(ctx context.Context, id string) (catalogdto.SenseiDetailOutput, error) {
	return b.p.GetSensei(ctx, id)
}

type dojoPortBridge struct{ p journalPort }

func (b dojoPortBridge) Start(ctx context.Context, input journaldto.StartInput) (journaldto.StartOutput, error) {
	return b.p.Start(ctx, input)
}
func (b dojoPortBridge) Write(ctx context.Context, content string) (journaldto.DraftOutput, error) {
	return b.p.Write(ctx, content)
}
func (b dojoPortBridge) Complete(ctx context.Context, input journaldto.CompleteInput) (journaldto.CompleteOutput, error) {
	return b.p.Complete(ctx, input)
}
func (b dojoPortBridge) Discard(ctx context.Context) error {
	return b.p.Discard(ctx)
}
func (b dojoPortBridge) Current(ctx context.Context) (journaldto.DraftOutput, error) {
	return b.p.Current(ctx)
}

type historyPortBridge struct{ p journalPort }

func (b historyPortBridge) History(ctx context.Context, limit int) ([]journaldto.SessionOutput, error) {
	return b.p.History(ctx, limit)
}
func (b historyPortBridge) GetSession(ctx context.Context, id string) (journaldto.SessionOutput, error) {
	return b.p.GetSession(ctx, id)
}

type achievementPortBridge struct{ p achievementPort }

func (b achievementPortBridge) List(ctx context.Context) ([]achievementdto.StatusOutput, error) {
	return b.p.List(ctx)
}
func (b achievementPortBridge) Recent(ctx context.Context, acknowledge bool) ([]achievementdto.NotificationOutput, error) {
	return b.p.Recent(ctx, acknowledge)
}

type statsPortBridge struct{ p journalPort }

func (b statsPortBridge) StatsDetail(ctx context.Context) (journaldto.StatsDetailOutput, error) {
	return b.p.StatsDetail(ctx)
}

type planPortBridge struct{ p billingPort }

func (b planPortBridge) Plan() (billingdto.PlanOutput, error) {
	return b.p.Plan()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
