package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/platform/sim"
	"github.com/vovakirdan/joystick-maze/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend plays the maze in the terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "tui" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal simulator" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if err := CheckSize(w, h, cfg); err != nil {
				return err
			}
		}
	}
	return Run(ctx, sim.NewSession(cfg, sim.DefaultHold, logger), rt)
}

// Model is the Bubble Tea model for the terminal simulator.
type Model struct {
	session *sim.Session
	keys    KeyMap
	help    help.Model
	style   lipgloss.Style
	rt      core.RuntimeConfig
	cancel  context.CancelFunc

	frame    *core.Framebuffer
	err      error
	quitting bool
}

// NewModel creates a model showing session. cancel stops the driver.
func NewModel(session *sim.Session, rt core.RuntimeConfig, cancel context.CancelFunc) Model {
	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		style:   panelStyle(rt.Tint),
		rt:      rt,
		cancel:  cancel,
		frame:   session.Panel.Snapshot(),
	}
}

// Init starts the status refresh.
func (m Model) Init() tea.Cmd {
	return tickCmd(statusInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = msg.fb
		return m, nil

	case doneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case TickMsg:
		return m, tickCmd(statusInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.session.Stick.Push(action)
	}
	return m, nil
}

// Err returns the device error that stopped the driver, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the panel, the status line and the help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.style.Render(RenderFrame(m.frame)))
	sb.WriteRune('\n')
	sb.WriteString(m.status())
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) status() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	buzzer := m.session.Buzzer
	if buzzer.Sounding() && !m.rt.Mute {
		return toneStyle.Render(fmt.Sprintf("♪ %d Hz", buzzer.Frequency()))
	}
	return statusStyle.Render(fmt.Sprintf("frame %d", m.session.Panel.Frames()))
}

// Run starts the driver and the Bubble Tea program and blocks until the user
// quits, ctx is cancelled or a simulated device fails.
func Run(ctx context.Context, session *sim.Session, rt core.RuntimeConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(session, rt, cancel)
	p := tea.NewProgram(model, tea.WithAltScreen())

	session.Panel.OnFlush(func(fb *core.Framebuffer) {
		p.Send(frameMsg{fb: fb})
	})

	done := session.Start(ctx)
	stopped := make(chan error, 1)
	go func() {
		err := <-done
		p.Send(doneMsg{err: err})
		stopped <- err
	}()
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, runErr := p.Run()
	cancel()
	driverErr := <-stopped

	if runErr != nil {
		return fmt.Errorf("tui: %w", runErr)
	}
	return driverErr
}
