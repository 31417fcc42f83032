package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/shop"
	"github.com/julianstephens/moodpet/internal/tui/handlers"
	"github.com/julianstephens/moodpet/internal/tui/state"
)

type Model struct {
	state.Model
}

func NewModel(ctrl state.Controller, catalog shop.Catalog) Model {
	m := Model{Model: state.New(ctrl, catalog)}
	m.Busy = ctrl.View().Loading
	return m
}

// Run starts the interactive program and blocks until it exits
func Run(ctrl state.Controller, catalog shop.Catalog) error {
	p := tea.NewProgram(NewModel(ctrl, catalog), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.Keys.Tab, m.Keys.Quit, m.Keys.Help}
	switch m.State {
	case constants.StateMood, constants.StateShop:
		keys = append(keys, m.Keys.Enter)
	case constants.StateAccount:
		if m.Ctrl.View().Authenticated() {
			keys = append(keys, m.Keys.Logout)
		} else {
			keys = append(keys, m.Keys.Login)
		}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Quit, m.Keys.Help}
	navigation := []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Enter}
	account := []key.Binding{m.Keys.Login, m.Keys.Logout}
	return [][]key.Binding{global, navigation, account}
}

func (m Model) Init() tea.Cmd {
	if !m.Busy {
		return nil
	}
	return tea.Batch(m.Spinner.Tick, handlers.BootstrapCmd(m.Ctrl))
}

func (m Model) loading() bool {
	return m.Busy || m.Ctrl.View().Loading
}
