package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/controller"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/pet"
	"github.com/julianstephens/moodpet/internal/shop"
	"github.com/julianstephens/moodpet/internal/tui/components/moodpicker"
	"github.com/julianstephens/moodpet/internal/tui/components/shoplist"
	"github.com/julianstephens/moodpet/internal/tui/handlers"
)

type fakeController struct {
	view       controller.View
	bootstraps int
	logouts    int
	logins     []models.Session
	tabs       []constants.SessionState
}

func newFakeController() *fakeController {
	return &fakeController{view: controller.View{
		Snapshot: models.DefaultSnapshot(),
		Auth:     constants.AuthAnonymous,
		Tab:      constants.StateMood,
	}}
}

func (f *fakeController) View() controller.View { return f.view }

func (f *fakeController) Bootstrap(ctx context.Context) {
	f.bootstraps++
	f.view.Loading = false
	f.view.Auth = constants.AuthAnonymous
}

func (f *fakeController) Login(ctx context.Context, s models.Session) error {
	f.logins = append(f.logins, s)
	f.view.Auth = constants.AuthAuthenticated
	f.view.Email = s.Email
	return nil
}

func (f *fakeController) Logout(ctx context.Context) {
	f.logouts++
	f.view.Auth = constants.AuthAnonymous
	f.view.Email = ""
	f.view.Snapshot = models.DefaultSnapshot()
}

func (f *fakeController) SubmitMood(m models.Mood) (models.MoodRecord, error) {
	rec := models.MoodRecord{ID: "r", Mood: m, CoinsEarned: 10}
	f.view.Snapshot.History = append([]models.MoodRecord{rec}, f.view.Snapshot.History...)
	f.view.Snapshot.Balance += 10
	f.view.Snapshot.PetState = pet.ApplyMood(f.view.Snapshot.PetState, m)
	return rec, nil
}

func (f *fakeController) Purchase(item models.ShopItem) bool {
	state, balance, ok := pet.ApplyPurchase(f.view.Snapshot.PetState, f.view.Snapshot.Balance, item)
	if ok {
		f.view.Snapshot.PetState = state
		f.view.Snapshot.Balance = balance
	}
	return ok
}

func (f *fakeController) SetTab(tab constants.SessionState) {
	f.tabs = append(f.tabs, tab)
	f.view.Tab = tab
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out, cmd
}

func ready(t *testing.T) (Model, *fakeController) {
	t.Helper()
	ctrl := newFakeController()
	m := NewModel(ctrl, shop.Default())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, ctrl
}

func TestBootstrapShowsSpinnerUntilDone(t *testing.T) {
	ctrl := newFakeController()
	ctrl.view.Loading = true
	ctrl.view.Auth = constants.AuthBootstrapping

	m := NewModel(ctrl, shop.Default())
	if !strings.Contains(m.View(), "Loading") {
		t.Error("View() does not show the loading screen while bootstrapping")
	}
	if strings.Contains(m.View(), "Account") {
		t.Error("View() rendered tabs while loading")
	}

	// Keys are ignored while loading
	m, _ = update(t, m, keyPress("tab"))
	if m.State != constants.StateMood {
		t.Errorf("State = %v after tab while loading, want mood", m.State)
	}

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil while loading")
	}
	// Run the bootstrap command directly rather than the batch
	msg := handlers.BootstrapCmd(ctrl)()
	m, _ = update(t, m, msg)

	if ctrl.bootstraps != 1 {
		t.Errorf("Bootstrap called %d times, want 1", ctrl.bootstraps)
	}
	if strings.Contains(m.View(), "Loading your pet") {
		t.Error("View() still loading after bootstrap finished")
	}
}

func TestTabCycling(t *testing.T) {
	m, ctrl := ready(t)

	want := []constants.SessionState{
		constants.StatePet,
		constants.StateShop,
		constants.StateHistory,
		constants.StateAccount,
		constants.StateMood,
	}
	for _, w := range want {
		m, _ = update(t, m, keyPress("tab"))
		if m.State != w {
			t.Fatalf("State = %v, want %v", m.State, w)
		}
	}

	m, _ = update(t, m, keyPress("shift+tab"))
	if m.State != constants.StateAccount {
		t.Errorf("shift+tab from Mood = %v, want Account", m.State)
	}
	if last := ctrl.tabs[len(ctrl.tabs)-1]; last != constants.StateAccount {
		t.Errorf("controller tab = %v, want Account", last)
	}
}

func TestViewRouting(t *testing.T) {
	tests := []struct {
		state constants.SessionState
		want  string
	}{
		{constants.StateMood, "How are you feeling?"},
		{constants.StatePet, "WindSong"},
		{constants.StateShop, "Treat"},
		{constants.StateHistory, "No moods logged yet"},
		{constants.StateAccount, "Not signed in"},
	}

	for _, tt := range tests {
		t.Run(tabTitles[tt.state], func(t *testing.T) {
			m, _ := ready(t)
			handlers.SelectTab(&m.Model, tt.state)
			if got := m.View(); !strings.Contains(got, tt.want) {
				t.Errorf("View() on %s does not contain %q", tabTitles[tt.state], tt.want)
			}
		})
	}
}

func TestSubmitMoodMessage(t *testing.T) {
	m, ctrl := ready(t)

	m, _ = update(t, m, moodpicker.SubmitMoodMsg{Mood: models.MoodHappy})
	if ctrl.view.Snapshot.Balance != 110 {
		t.Errorf("balance = %d, want 110", ctrl.view.Snapshot.Balance)
	}
	if !strings.Contains(m.Status, "happy") {
		t.Errorf("Status = %q, want it to mention the mood", m.Status)
	}

	handlers.SelectTab(&m.Model, constants.StateHistory)
	if strings.Contains(m.View(), "No moods logged yet") {
		t.Error("history tab was not refreshed after a mood")
	}
}

func TestPurchaseMessage(t *testing.T) {
	m, ctrl := ready(t)
	ctrl.view.Snapshot.Balance = 10

	treat, err := shop.Default().Find("treat")
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, shoplist.PurchaseMsg{Item: treat})
	if ctrl.view.Snapshot.Balance != 10 || m.Status != "" {
		t.Errorf("unaffordable purchase changed state: balance %d, status %q", ctrl.view.Snapshot.Balance, m.Status)
	}

	ctrl.view.Snapshot.Balance = 100
	m, _ = update(t, m, shoplist.PurchaseMsg{Item: treat})
	if ctrl.view.Snapshot.Balance != 80 {
		t.Errorf("balance = %d, want 80", ctrl.view.Snapshot.Balance)
	}
	if !strings.Contains(m.Status, "Bought") {
		t.Errorf("Status = %q", m.Status)
	}
}

func TestLoginFlow(t *testing.T) {
	m, _ := ready(t)
	handlers.SelectTab(&m.Model, constants.StateAccount)

	m, _ = update(t, m, keyPress("i"))
	if m.State != constants.StateLogin {
		t.Fatalf("State = %v after i, want login", m.State)
	}
	if m.Form == nil {
		t.Fatal("login form was not created")
	}

	m, _ = update(t, m, keyPress("esc"))
	if m.State != constants.StateAccount {
		t.Errorf("State = %v after esc, want account", m.State)
	}
}

func TestLoginDone(t *testing.T) {
	m, ctrl := ready(t)
	m.Busy = true

	msg := handlers.LoginCmd(ctrl, models.Session{Token: "tok", Email: "pat@example.com"})()
	m, _ = update(t, m, msg)

	if m.Busy {
		t.Error("Busy still set after login finished")
	}
	if !strings.Contains(m.Status, "pat@example.com") {
		t.Errorf("Status = %q", m.Status)
	}
}

func TestLogoutConfirmation(t *testing.T) {
	m, ctrl := ready(t)
	ctrl.view.Auth = constants.AuthAuthenticated
	ctrl.view.Email = "pat@example.com"
	handlers.SelectTab(&m.Model, constants.StateAccount)

	m, _ = update(t, m, keyPress("o"))
	if m.State != constants.StateConfirmLogout {
		t.Fatalf("State = %v after o, want confirm logout", m.State)
	}

	m, _ = update(t, m, keyPress("n"))
	if m.State != constants.StateAccount || ctrl.logouts != 0 {
		t.Fatalf("declining sign out: state %v, logouts %d", m.State, ctrl.logouts)
	}

	m, _ = update(t, m, keyPress("o"))
	m, cmd := update(t, m, keyPress("y"))
	if cmd == nil {
		t.Fatal("confirming sign out returned no command")
	}
	m, _ = update(t, m, cmd())
	if ctrl.logouts != 1 {
		t.Errorf("Logout called %d times, want 1", ctrl.logouts)
	}
	if !strings.Contains(m.View(), "Not signed in") {
		t.Error("account tab still shows a signed in user")
	}
}

func TestQuit(t *testing.T) {
	m, _ := ready(t)
	m, cmd := update(t, m, keyPress("q"))
	if !m.Quitting || cmd == nil {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("View() after quit is not empty")
	}
}
