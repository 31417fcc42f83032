package pet

import (
	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
)

// Describe returns a short human summary of how the pet is doing
func Describe(s models.PetState) string {
	var summary string
	switch {
	case s.Happiness >= constants.ThrivingThreshold:
		summary = "thriving"
	case s.Happiness >= constants.ContentThreshold:
		summary = "content"
	case s.Happiness >= constants.LowThreshold:
		summary = "low"
	default:
		summary = "miserable"
	}
	if s.Hunger <= constants.HungryThreshold {
		summary += ", hungry"
	}
	return summary
}
