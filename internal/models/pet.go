package models

import (
	"fmt"

	"github.com/julianstephens/moodpet/internal/constants"
)

// PetState is the simulated state of the user's virtual pet.
// Happiness and Hunger are always kept within [0, 100].
type PetState struct {
	Appearance  string `json:"appearance"`
	Personality string `json:"personality"`
	Happiness   int    `json:"happiness"`
	Hunger      int    `json:"hunger"`
}

// DefaultPetState returns the pet state every new session starts from
func DefaultPetState() PetState {
	return PetState{
		Appearance:  constants.DefaultAppearance,
		Personality: constants.DefaultPersonality,
		Happiness:   constants.DefaultHappiness,
		Hunger:      constants.DefaultHunger,
	}
}

// Validate reports a stat outside [MinStat, MaxStat]
func (p PetState) Validate() error {
	if p.Happiness < constants.MinStat || p.Happiness > constants.MaxStat {
		return fmt.Errorf("happiness %d out of range [%d, %d]", p.Happiness, constants.MinStat, constants.MaxStat)
	}
	if p.Hunger < constants.MinStat || p.Hunger > constants.MaxStat {
		return fmt.Errorf("hunger %d out of range [%d, %d]", p.Hunger, constants.MinStat, constants.MaxStat)
	}
	return nil
}
