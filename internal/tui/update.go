package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/tui/components/moodpicker"
	"github.com/julianstephens/moodpet/internal/tui/components/shoplist"
	"github.com/julianstephens/moodpet/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case handlers.BootstrapDoneMsg:
		m.Busy = false
		m.Refresh()
		return m, nil

	case handlers.LoginDoneMsg:
		m.Busy = false
		m.Refresh()
		if msg.Err != nil {
			m.FormError = msg.Err.Error()
			m.Status = ""
		} else {
			m.FormError = ""
			m.Status = fmt.Sprintf("Signed in as %s", m.Ctrl.View().Email)
		}
		return m, nil

	case handlers.LogoutDoneMsg:
		m.Busy = false
		m.Refresh()
		m.Status = "Signed out"
		return m, nil

	case moodpicker.SubmitMoodMsg:
		handlers.HandleSubmitMood(&m.Model, msg.Mood)
		return m, nil

	case shoplist.PurchaseMsg:
		handlers.HandlePurchase(&m.Model, msg.Item)
		return m, nil
	}

	// Nothing is interactive until loading finishes
	if m.loading() {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.State {
	case constants.StateLogin:
		return m, handlers.HandleLoginState(&m.Model, msg)
	case constants.StateConfirmLogout:
		return m, handlers.HandleConfirmLogoutState(&m.Model, msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			return m, cmd
		}
		if m.State == constants.StateAccount && handlers.HandleAccountKeys(&m.Model, msg) {
			if m.State == constants.StateLogin {
				return m, m.Form.Init()
			}
			return m, nil
		}
	}

	switch m.State {
	case constants.StateMood:
		m.MoodPicker, cmd = m.MoodPicker.Update(msg)
	case constants.StateShop:
		m.ShopList, cmd = m.ShopList.Update(msg)
	case constants.StateHistory:
		m.HistoryList, cmd = m.HistoryList.Update(msg)
	}
	return m, cmd
}
