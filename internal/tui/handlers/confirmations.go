package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/tui/state"
)

// HandleConfirmLogoutState handles the sign out confirmation state
func HandleConfirmLogoutState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.State = constants.StateAccount
			m.Busy = true
			return LogoutCmd(m.Ctrl)
		case "n", "N", "esc":
			m.State = constants.StateAccount
		}
	}
	return nil
}
