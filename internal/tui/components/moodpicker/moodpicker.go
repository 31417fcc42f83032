package moodpicker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/pet"
)

type SubmitMoodMsg struct {
	Mood models.Mood
}

type Item struct {
	Mood models.Mood
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Mood.Icon(), i.Mood)
}

func (i Item) Description() string {
	e := pet.EffectFor(i.Mood)
	return fmt.Sprintf("%+d happiness · %s, %s · +%d coins", e.HappinessDelta, e.Appearance, e.Personality, constants.MoodReward)
}

func (i Item) FilterValue() string { return string(i.Mood) }

type KeyMap struct {
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log mood"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	items := make([]list.Item, len(models.AllMoods))
	for i, m := range models.AllMoods {
		items[i] = Item{Mood: m}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "How are you feeling?"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Submit}
	}

	return Model{list: l, keys: keys}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Submit) {
		if i, ok := m.list.SelectedItem().(Item); ok {
			return m, func() tea.Msg { return SubmitMoodMsg{Mood: i.Mood} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Selected returns the highlighted mood
func (m Model) Selected() (models.Mood, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Mood, ok
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
