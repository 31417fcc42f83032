package handlers

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/tui/state"
)

// NewLoginForm creates the sign in form
func NewLoginForm(fm *state.LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Description("Shown on the Account tab").
				Value(&fm.Email),
			huh.NewInput().
				Title("Access token").
				Description("Bearer token issued by the backend").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Token).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("token is required")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// HandleLoginState handles the sign in form
func HandleLoginState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.FormError = ""
		m.State = constants.StateAccount
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		session := models.Session{
			Token: strings.TrimSpace(m.LoginForm.Token),
			Email: strings.TrimSpace(m.LoginForm.Email),
		}
		m.LoginForm = nil
		m.State = constants.StateAccount
		m.Busy = true
		cmds = append(cmds, LoginCmd(m.Ctrl, session), m.Spinner.Tick)
	case huh.StateAborted:
		m.LoginForm = nil
		m.State = constants.StateAccount
	}
	return tea.Batch(cmds...)
}
