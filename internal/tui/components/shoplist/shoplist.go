package shoplist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/shop"
)

type PurchaseMsg struct {
	Item models.ShopItem
}

type Item struct {
	ShopItem models.ShopItem
	Balance  int
}

func (i Item) Affordable() bool {
	return i.Balance >= i.ShopItem.Price
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s %s · %d coins", i.ShopItem.Icon, i.ShopItem.Name, i.ShopItem.Price)
	if !i.Affordable() {
		title += fmt.Sprintf(" (need %d more)", i.ShopItem.Price-i.Balance)
	}
	return title
}

func (i Item) Description() string {
	return shop.DescribeEffect(i.ShopItem.Effect)
}

func (i Item) FilterValue() string { return i.ShopItem.Name }

type KeyMap struct {
	Buy key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Buy: key.NewBinding(
			key.WithKeys("enter", "b"),
			key.WithHelp("enter/b", "buy"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	catalog shop.Catalog
}

func New(catalog shop.Catalog, balance, width, height int) Model {
	l := list.New(items(catalog, balance), list.NewDefaultDelegate(), width, height)
	l.Title = "Shop"
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Buy}
	}

	return Model{list: l, keys: keys, catalog: catalog}
}

func items(catalog shop.Catalog, balance int) []list.Item {
	out := make([]list.Item, len(catalog))
	for i, it := range catalog {
		out[i] = Item{ShopItem: it, Balance: balance}
	}
	return out
}

// SetBalance refreshes affordability hints
func (m *Model) SetBalance(balance int) {
	m.list.SetItems(items(m.catalog, balance))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Buy) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return PurchaseMsg{Item: i.ShopItem} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  The shop is closed."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
