package pet

import (
	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
)

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampStat(v int) int {
	return Clamp(v, constants.MinStat, constants.MaxStat)
}

// ApplyMood returns the pet state after a mood submission. Labels are
// overwritten, happiness moves by the mood's delta and hunger always drops by
// a fixed amount without going below zero.
func ApplyMood(current models.PetState, mood models.Mood) models.PetState {
	effect := EffectFor(mood)

	next := current
	next.Appearance = effect.Appearance
	next.Personality = effect.Personality
	next.Happiness = clampStat(current.Happiness + effect.HappinessDelta)
	next.Hunger = max(current.Hunger-constants.MoodHungerCost, constants.MinStat)
	return next
}

// ApplyPurchase debits item.Price from balance and applies the item's effect.
// An unaffordable purchase returns the inputs unchanged and false.
func ApplyPurchase(current models.PetState, balance int, item models.ShopItem) (models.PetState, int, bool) {
	if balance < item.Price {
		return current, balance, false
	}

	next := current
	if item.Effect.Happiness != nil {
		next.Happiness = clampStat(current.Happiness + *item.Effect.Happiness)
	}
	if item.Effect.Hunger != nil {
		next.Hunger = clampStat(current.Hunger + *item.Effect.Hunger)
	}
	return next, balance - item.Price, true
}
