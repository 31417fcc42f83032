package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/tui/state"
)

// HandleGlobalKeys handles global key presses
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.Quitting = true
		return true, tea.Quit
	case !state.IsTab(m.State):
		// Sub-states (forms, confirmations) own the keyboard
		return false, nil
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Tab):
		SwitchTab(m, 1)
		return true, nil
	case key.Matches(msg, m.Keys.ShiftTab):
		SwitchTab(m, -1)
		return true, nil
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	}
	return false, nil
}

// SwitchTab moves step tabs forward (or backward when negative), wrapping around
func SwitchTab(m *state.Model, step int) {
	idx := 0
	for i, t := range state.Tabs {
		if t == m.State {
			idx = i
			break
		}
	}
	n := len(state.Tabs)
	idx = ((idx+step)%n + n) % n
	SelectTab(m, state.Tabs[idx])
}

// SelectTab shows tab and records it on the controller
func SelectTab(m *state.Model, tab constants.SessionState) {
	m.State = tab
	m.Status = ""
	m.Ctrl.SetTab(tab)
}
