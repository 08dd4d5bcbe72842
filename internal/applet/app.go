// Package applet is the panel applet shell: an icon button that toggles a
// popup showing CPU usage, driven by a fixed one-second tick.
package applet

import (
	"PowerManager/internal/monitoring/cpu"
	"PowerManager/internal/pkg/config"
	"PowerManager/internal/pkg/logger"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// PopupID identifies one opening of the popup
type PopupID string

func newPopupID() PopupID {
	return PopupID(uuid.NewString())
}

// TogglePopupMsg opens the popup when closed and closes it when open
type TogglePopupMsg struct{}

// PopupClosedMsg reports that the popup with the given id was closed
type PopupClosedMsg struct {
	ID PopupID
}

// TickMsg fires once per tick interval
type TickMsg time.Time

// App is the applet state handed to the event loop
type App struct {
	config  *config.Config
	monitor *cpu.Monitor
	host    *cpu.HostInfo
	popup   *PopupID
	sample  cpu.Sample

	keys   keyMap
	help   help.Model
	styles styles

	width    int
	height   int
	quitting bool
}

// New creates the applet. host may be nil when processor details are unavailable.
func New(cfg *config.Config, monitor *cpu.Monitor, host *cpu.HostInfo) *App {
	return &App{
		config:  cfg,
		monitor: monitor,
		host:    host,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  defaultStyles(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(cpu.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the tick subscription
func (a *App) Init() tea.Cmd {
	return tick()
}

// Update applies one message to the applet state
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case TogglePopupMsg:
		if a.popup != nil {
			logger.Debug("Closing popup", logger.String("popup_id", string(*a.popup)))
			a.popup = nil
			return a, nil
		}
		id := newPopupID()
		a.popup = &id
		logger.Debug("Opening popup", logger.String("popup_id", string(id)))
		return a, nil

	case PopupClosedMsg:
		if a.popup != nil && *a.popup == msg.ID {
			a.popup = nil
		}
		return a, nil

	case TickMsg:
		a.sample = a.monitor.CheckCPU()
		return a, tick()
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, a.keys.Toggle):
		return a.Update(TogglePopupMsg{})
	case key.Matches(msg, a.keys.Close):
		if id, ok := a.Popup(); ok {
			return a.Update(PopupClosedMsg{ID: id})
		}
	}
	return a, nil
}

// Popup returns the id of the open popup, if any
func (a *App) Popup() (PopupID, bool) {
	if a.popup == nil {
		return "", false
	}
	return *a.popup, true
}

// Sample returns the sample the popup currently shows
func (a *App) Sample() cpu.Sample {
	return a.sample
}

// Run starts the applet event loop and blocks until the user quits
func Run(cfg *config.Config, monitor *cpu.Monitor, host *cpu.HostInfo) error {
	p := tea.NewProgram(New(cfg, monitor, host), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
