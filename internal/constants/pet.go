package constants

const (
	// Starting values for a fresh (or logged out) user
	DefaultBalance     = 100
	DefaultPetName     = "WindSong"
	DefaultAppearance  = "neutral"
	DefaultPersonality = "balanced"
	DefaultHappiness   = 50
	DefaultHunger      = 50

	// MoodReward is the coin reward for every mood submission
	MoodReward = 10

	// MoodHungerCost is subtracted from hunger on every mood submission
	MoodHungerCost = 2

	MinStat = 0
	MaxStat = 100

	// Pet summary thresholds
	ThrivingThreshold = 80
	ContentThreshold  = 50
	LowThreshold      = 20
	HungryThreshold   = 20
)
