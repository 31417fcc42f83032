package state

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/controller"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/shop"
	"github.com/julianstephens/moodpet/internal/tui/components/history"
	"github.com/julianstephens/moodpet/internal/tui/components/moodpicker"
	"github.com/julianstephens/moodpet/internal/tui/components/shoplist"
)

// Controller is what the views need from the application controller
type Controller interface {
	View() controller.View
	Bootstrap(ctx context.Context)
	Login(ctx context.Context, session models.Session) error
	Logout(ctx context.Context)
	SubmitMood(mood models.Mood) (models.MoodRecord, error)
	Purchase(item models.ShopItem) bool
	SetTab(tab constants.SessionState)
}

// LoginFormModel represents the form model for signing in
type LoginFormModel struct {
	Email string
	Token string
}

// Tabs lists the main views in tab bar order
var Tabs = []constants.SessionState{
	constants.StateMood,
	constants.StatePet,
	constants.StateShop,
	constants.StateHistory,
	constants.StateAccount,
}

// Model represents the shared state for the TUI
type Model struct {
	Ctrl        Controller
	Catalog     shop.Catalog
	State       constants.SessionState
	Keys        KeyMap
	Help        help.Model
	Spinner     spinner.Model
	MoodPicker  moodpicker.Model
	ShopList    shoplist.Model
	HistoryList history.Model
	Form        *huh.Form
	LoginForm   *LoginFormModel
	Status      string // one-line feedback under the tabs
	FormError   string
	Busy        bool // a bootstrap, login or logout command is running
	Quitting    bool
	Width       int
	Height      int
}

// New creates a new state Model
func New(ctrl Controller, catalog shop.Catalog) Model {
	v := ctrl.View()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		Ctrl:        ctrl,
		Catalog:     catalog,
		State:       v.Tab,
		Keys:        DefaultKeyMap(),
		Help:        help.New(),
		Spinner:     sp,
		MoodPicker:  moodpicker.New(0, 0),
		ShopList:    shoplist.New(catalog, v.Snapshot.Balance, 0, 0),
		HistoryList: history.New(v.Snapshot.History, 0, 0),
	}
}

// IsTab reports whether s is one of the main views
func IsTab(s constants.SessionState) bool {
	for _, t := range Tabs {
		if t == s {
			return true
		}
	}
	return false
}

// Refresh pulls the controller's current state into the components
func (m *Model) Refresh() {
	v := m.Ctrl.View()
	m.ShopList.SetBalance(v.Snapshot.Balance)
	m.HistoryList.SetRecords(v.Snapshot.History)
}

// SetSize resizes every component to fit the terminal
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	// Leave room for the tab bar, status line and help
	h := height - 6
	if h < 0 {
		h = 0
	}
	m.MoodPicker.SetSize(width-4, h)
	m.ShopList.SetSize(width-4, h)
	m.HistoryList.SetSize(width-4, h)
}
