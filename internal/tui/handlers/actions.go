package handlers

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/tui/state"
)

// HandleSubmitMood logs a mood and reports the reward
func HandleSubmitMood(m *state.Model, mood models.Mood) {
	record, err := m.Ctrl.SubmitMood(mood)
	if err != nil {
		m.Status = err.Error()
		return
	}
	m.Refresh()
	m.Status = fmt.Sprintf("%s Logged %s, +%d coins", record.Mood.Icon(), record.Mood, record.CoinsEarned)
}

// HandlePurchase buys item. An unaffordable item is a no-op; the shop
// list already shows how many coins are missing.
func HandlePurchase(m *state.Model, item models.ShopItem) {
	if !m.Ctrl.Purchase(item) {
		return
	}
	m.Refresh()
	m.Status = fmt.Sprintf("%s Bought %s", item.Icon, item.Name)
}

// HandleAccountKeys handles the sign in and sign out keys on the Account tab
func HandleAccountKeys(m *state.Model, msg tea.KeyMsg) bool {
	v := m.Ctrl.View()
	switch {
	case key.Matches(msg, m.Keys.Login) && !v.Authenticated():
		m.LoginForm = &state.LoginFormModel{}
		m.Form = NewLoginForm(m.LoginForm)
		m.FormError = ""
		m.State = constants.StateLogin
		return true
	case key.Matches(msg, m.Keys.Logout) && v.Authenticated():
		m.State = constants.StateConfirmLogout
		return true
	}
	return false
}
