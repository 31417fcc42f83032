package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
)

type Item struct {
	Record models.MoodRecord
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Record.Mood.Icon(), i.Record.Mood)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · +%d coins", i.Record.Timestamp.Local().Format(constants.DateTimeFormat), i.Record.CoinsEarned)
}

func (i Item) FilterValue() string { return string(i.Record.Mood) }

type Model struct {
	list list.Model
}

func New(records []models.MoodRecord, width, height int) Model {
	l := list.New(items(records), list.NewDefaultDelegate(), width, height)
	l.Title = "Mood history"
	l.SetShowHelp(false)
	return Model{list: l}
}

func items(records []models.MoodRecord) []list.Item {
	out := make([]list.Item, len(records))
	for i, r := range records {
		out[i] = Item{Record: r}
	}
	return out
}

func (m *Model) SetRecords(records []models.MoodRecord) {
	m.list.SetItems(items(records))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No moods logged yet.\n  Pick one on the Mood tab."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
