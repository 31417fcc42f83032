package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/tui/components/petcard"
	"github.com/julianstephens/moodpet/internal/tui/state"
)

var tabTitles = map[constants.SessionState]string{
	constants.StateMood:    "Mood",
	constants.StatePet:     "Pet",
	constants.StateShop:    "Shop",
	constants.StateHistory: "History",
	constants.StateAccount: "Account",
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	if m.loading() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s Loading your pet...", m.Spinner.View()),
		)
	}

	var content string

	switch m.State {
	case constants.StateMood:
		content = docStyle.Render(m.MoodPicker.View())
	case constants.StatePet:
		content = m.viewPet()
	case constants.StateShop:
		content = docStyle.Render(m.ShopList.View())
	case constants.StateHistory:
		content = docStyle.Render(m.HistoryList.View())
	case constants.StateAccount:
		content = m.viewAccount()
	case constants.StateLogin:
		content = docStyle.Render(m.Form.View())
	case constants.StateConfirmLogout:
		content = m.viewConfirmLogout()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.Help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, t := range state.Tabs {
		if m.State == t {
			tabs = append(tabs, activeTabStyle.Render(tabTitles[t]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tabTitles[t]))
		}
	}

	v := m.Ctrl.View()
	coins := coinStyle.Render(fmt.Sprintf("🪙 %d", v.Snapshot.Balance))
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, coins)...)
}

func (m Model) viewStatus() string {
	if m.Status == "" {
		return ""
	}
	return statusStyle.Render(m.Status)
}

func (m Model) viewPet() string {
	v := m.Ctrl.View()
	return docStyle.Render(petcard.View(v.Snapshot.PetName, v.Snapshot.PetState, v.Snapshot.Balance))
}

func (m Model) viewAccount() string {
	v := m.Ctrl.View()

	var rows []string
	if v.Authenticated() {
		rows = append(rows,
			fmt.Sprintf("Signed in as %s", emailOrUnknown(v.Email)),
			mutedStyle.Render("Changes are saved to your account."),
			"",
			"[o] Sign out",
		)
	} else {
		rows = append(rows,
			"Not signed in",
			warningStyle.Render("Moods and purchases stay on this device until you sign in."),
			"",
			"[i] Sign in",
		)
	}
	if m.FormError != "" {
		rows = append(rows, "", dangerStyle.Render(m.FormError))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) viewConfirmLogout() string {
	return lipgloss.Place(m.Width, m.Height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Sign out? Your pet will reset on this device."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func emailOrUnknown(email string) string {
	if email == "" {
		return "(unknown email)"
	}
	return email
}
