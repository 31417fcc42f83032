package handlers

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/tui/state"
)

type BootstrapDoneMsg struct{}

type LoginDoneMsg struct {
	Err error
}

type LogoutDoneMsg struct{}

// BootstrapCmd resolves the stored session off the UI goroutine
func BootstrapCmd(ctrl state.Controller) tea.Cmd {
	return func() tea.Msg {
		ctrl.Bootstrap(context.Background())
		return BootstrapDoneMsg{}
	}
}

func LoginCmd(ctrl state.Controller, session models.Session) tea.Cmd {
	return func() tea.Msg {
		return LoginDoneMsg{Err: ctrl.Login(context.Background(), session)}
	}
}

func LogoutCmd(ctrl state.Controller) tea.Cmd {
	return func() tea.Msg {
		ctrl.Logout(context.Background())
		return LogoutDoneMsg{}
	}
}
