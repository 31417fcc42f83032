package petcard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/pet"
)

const barWidth = 20

var (
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(11)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 3)

	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

var faces = map[string]string{
	"joyful":      "(^ᴗ^)",
	"melancholic": "(╥﹏╥)",
	"fiery":       "(ಠ益ಠ)",
	"serene":      "(˘ᵕ˘)",
	"energetic":   "(ノ◕ヮ◕)ノ",
	"nervous":     "(°ロ°;)",
}

// Face returns an ascii face for the pet's appearance
func Face(appearance string) string {
	if f, ok := faces[appearance]; ok {
		return f
	}
	return "(•‿•)"
}

// Bar renders value on a 0..MaxStat scale
func Bar(value int) string {
	filled := pet.Clamp(value, constants.MinStat, constants.MaxStat) * barWidth / constants.MaxStat
	style := filledStyle
	if value <= constants.LowThreshold {
		style = lowStyle
	}
	return style.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barWidth-filled)) +
		fmt.Sprintf(" %3d", value)
}

// View renders the pet card
func View(name string, s models.PetState, balance int) string {
	rows := []string{
		nameStyle.Render(name) + "  " + Face(s.Appearance),
		"",
		labelStyle.Render("Looks") + s.Appearance,
		labelStyle.Render("Feels") + s.Personality,
		labelStyle.Render("Happiness") + Bar(s.Happiness),
		labelStyle.Render("Fullness") + Bar(s.Hunger),
		"",
		fmt.Sprintf("%s is %s. You have %d coins.", name, pet.Describe(s), balance),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
