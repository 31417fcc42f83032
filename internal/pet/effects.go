// Package pet holds the pure transition functions that drive the virtual pet.
package pet

import "github.com/julianstephens/moodpet/internal/models"

// Effect is the change a logged mood applies to the pet
type Effect struct {
	HappinessDelta int
	Appearance     string
	Personality    string
}

var moodEffects = map[models.Mood]Effect{
	models.MoodHappy:   {HappinessDelta: 15, Appearance: "joyful", Personality: "cheerful"},
	models.MoodSad:     {HappinessDelta: -10, Appearance: "melancholic", Personality: "sensitive"},
	models.MoodAngry:   {HappinessDelta: -5, Appearance: "fiery", Personality: "passionate"},
	models.MoodCalm:    {HappinessDelta: 10, Appearance: "serene", Personality: "peaceful"},
	models.MoodExcited: {HappinessDelta: 12, Appearance: "energetic", Personality: "playful"},
	models.MoodAnxious: {HappinessDelta: -8, Appearance: "nervous", Personality: "cautious"},
}

// LookupEffect returns the effect for mood and whether the mood is known
func LookupEffect(mood models.Mood) (Effect, bool) {
	e, ok := moodEffects[mood]
	return e, ok
}

// EffectFor returns the effect for mood, or the zero Effect for an unknown mood
func EffectFor(mood models.Mood) Effect {
	return moodEffects[mood]
}
