package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/highcard-dev/console/internal/core/domain"
	"github.com/highcard-dev/console/internal/core/ports"
)

const statePollInterval = 200 * time.Millisecond

type logEventMsg struct {
	event *domain.LogEvent
}

type streamClosedMsg struct{}

type stateTickMsg time.Time

// ConsoleView renders one console session: status indicator, log viewport and input line.
type ConsoleView struct {
	session      ports.ConsoleSessionInterface
	subscription chan *domain.LogEvent
	entries      []domain.LogEntry
	state        domain.LifecycleState

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
}

func NewConsoleView(session ports.ConsoleSessionInterface) *ConsoleView {
	input := textinput.New()
	input.Placeholder = "Enter command..."
	input.Prompt = "$ "
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62"))

	return &ConsoleView{
		session:      session,
		subscription: session.Subscribe(),
		state:        session.State(),
		viewport:     vp,
		input:        input,
		spinner:      s,
	}
}

func waitForEvent(subscription chan *domain.LogEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-subscription
		if !ok {
			return streamClosedMsg{}
		}
		return logEventMsg{event: event}
	}
}

func pollState() tea.Cmd {
	return tea.Tick(statePollInterval, func(t time.Time) tea.Msg {
		return stateTickMsg(t)
	})
}

func (v *ConsoleView) Init() tea.Cmd {
	return tea.Batch(waitForEvent(v.subscription), v.spinner.Tick, textinput.Blink, pollState())
}

func (v *ConsoleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.viewport.Width = msg.Width
		// header, input line and the viewport border
		v.viewport.Height = msg.Height - 5
		v.input.Width = msg.Width - 4
		v.refresh()
		return v, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return v, tea.Quit
		case tea.KeyEnter:
			line := v.input.Value()
			v.input.Reset()
			if strings.TrimSpace(line) == "" {
				return v, nil
			}
			if err := v.session.Submit(line); err != nil {
				return v, tea.Quit
			}
			v.state = v.session.State()
			return v, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return v, cmd
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	case logEventMsg:
		v.entries = ApplyEvent(v.entries, msg.event)
		v.refresh()
		return v, waitForEvent(v.subscription)
	case streamClosedMsg:
		return v, tea.Quit
	case stateTickMsg:
		v.state = v.session.State()
		return v, pollState()
	default:
		var inputCmd, spinnerCmd tea.Cmd
		v.input, inputCmd = v.input.Update(msg)
		v.spinner, spinnerCmd = v.spinner.Update(msg)
		return v, tea.Batch(inputCmd, spinnerCmd)
	}
}

func (v *ConsoleView) refresh() {
	lines := make([]string, len(v.entries))
	for i, entry := range v.entries {
		lines[i] = RenderEntry(entry)
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))
	v.viewport.GotoBottom()
}

func (v *ConsoleView) indicator() string {
	switch v.state {
	case domain.LifecycleStateRunning:
		return runningDot
	case domain.LifecycleStateStopped:
		return stoppedDot
	}
	return v.spinner.View()
}

func (v *ConsoleView) View() string {
	info := v.session.Info()
	header := fmt.Sprintf("%s  %s %s",
		titleStyle.Render("Console - "+info.ServerName),
		v.indicator(),
		mutedStyle.Render(v.state.Label()),
	)
	return fmt.Sprintf("%s\n%s\n%s\n", header, v.viewport.View(), v.input.View())
}
