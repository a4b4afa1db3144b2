package dojo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	journaldto "pento/internal/modules/journal/dto"
	apperrors "pento/internal/platform/errors"
	"pento/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type JournalPort interface {
	Start(ctx context.Context, input journaldto.StartInput) (journaldto.StartOutput, error)
	Write(ctx context.Context, content string) (journaldto.DraftOutput, error)
	Complete(ctx context.Context, input journaldto.CompleteInput) (journaldto.CompleteOutput, error)
	Discard(ctx context.Context) error
	Current(ctx context.Context) (journaldto.DraftOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type DraftLoadedMsg struct {
	Draft journaldto.DraftOutput
	Err   error
}

type SessionStartedMsg struct {
	Output journaldto.StartOutput
	Err    error
}

type DraftSavedMsg struct {
	Draft journaldto.DraftOutput
	Err   error
}

// SessionCompletedMsg bubbles up to the app model so other tabs can refresh.
type SessionCompletedMsg struct {
	Output journaldto.CompleteOutput
	Err    error
}

type DraftDiscardedMsg struct{ Err error }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   JournalPort
	editor textarea.Model
	prompt string
	sensei string
	active bool
	status string
	width  int
	height int
}

func New(port JournalPort) Model {
	ta := textarea.New()
	ta.Placeholder = "Start a session from the Senseis tab, then write here…"
	ta.ShowLineNumbers = false
	return Model{port: port, editor: ta, status: "no session"}
}

func (m Model) Init() tea.Cmd {
	return m.loadDraftCmd()
}

// StartSession begins a session for the picked sensei.
func (m Model) StartSession(senseiID, modeID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Start(context.Background(), journaldto.StartInput{SenseiID: senseiID, ModeID: modeID})
		return SessionStartedMsg{Output: out, Err: err}
	}
}

// Active reports whether a draft is open and the editor owns the keyboard.
func (m Model) Active() bool {
	return m.active
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(m.width - 6)
		m.editor.SetHeight(m.height - 8)

	case DraftLoadedMsg:
		if msg.Err != nil {
			if !errors.Is(msg.Err, apperrors.ErrNoDraft) {
				m.status = msg.Err.Error()
			}
			return m, nil
		}
		m.active = true
		m.prompt = msg.Draft.PromptText
		m.sensei = msg.Draft.SenseiID
		m.editor.SetValue(msg.Draft.Content)
		m.status = "draft recovered"
		cmds = append(cmds, m.editor.Focus())

	case SessionStartedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.active = true
		m.prompt = msg.Output.PromptText
		m.sensei = msg.Output.SenseiID
		m.editor.SetValue("")
		m.status = "session started"
		cmds = append(cmds, m.editor.Focus())

	case DraftSavedMsg:
		if msg.Err != nil {
			m.status = "autosave failed: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("saved, %d words", msg.Draft.WordCount)
		}

	case SessionCompletedMsg:
		if msg.Err != nil {
			m.status = "complete failed: " + msg.Err.Error()
			return m, nil
		}
		m.active = false
		m.prompt = ""
		m.editor.SetValue("")
		m.editor.Blur()
		m.status = fmt.Sprintf("session complete: %d words", msg.Output.WordCount)

	case DraftDiscardedMsg:
		if msg.Err == nil {
			m.active = false
			m.prompt = ""
			m.editor.SetValue("")
			m.editor.Blur()
			m.status = "draft discarded"
		}

	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+s":
			return m, m.saveDraftCmd()
		case "ctrl+d":
			return m, m.completeCmd()
		case "ctrl+x":
			return m, m.discardCmd()
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	if m.active {
		sb.WriteString(theme.Title.Render(m.prompt) + "\n")
		sb.WriteString(theme.Muted.Render("sensei: "+m.sensei) + "\n\n")
	} else {
		sb.WriteString(theme.Muted.Render("No session in progress.") + "\n\n")
	}
	sb.WriteString(m.editor.View() + "\n\n")
	sb.WriteString(theme.Muted.Render("ctrl+s: save  ctrl+d: complete  ctrl+x: discard  ") + theme.Hot.Render(m.status))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Padding(1).
		Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loadDraftCmd() tea.Cmd {
	return func() tea.Msg {
		draft, err := m.port.Current(context.Background())
		return DraftLoadedMsg{Draft: draft, Err: err}
	}
}

func (m Model) saveDraftCmd() tea.Cmd {
	content := m.editor.Value()
	return func() tea.Msg {
		draft, err := m.port.Write(context.Background(), content)
		return DraftSavedMsg{Draft: draft, Err: err}
	}
}

func (m Model) completeCmd() tea.Cmd {
	content := m.editor.Value()
	return func() tea.Msg {
		out, err := m.port.Complete(context.Background(), journaldto.CompleteInput{Content: content})
		return SessionCompletedMsg{Output: out, Err: err}
	}
}

func (m Model) discardCmd() tea.Cmd {
	return func() tea.Msg {
		return DraftDiscardedMsg{Err: m.port.Discard(context.Background())}
	}
}
