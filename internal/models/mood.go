package models

import (
	"fmt"
	"strings"
	"time"
)

// Mood is one of a closed set of emotional states a user can log
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
	MoodCalm    Mood = "calm"
	MoodExcited Mood = "excited"
	MoodAnxious Mood = "anxious"
)

// AllMoods lists every mood in display order
var AllMoods = []Mood{MoodHappy, MoodSad, MoodAngry, MoodCalm, MoodExcited, MoodAnxious}

// Valid reports whether m is a member of the mood enumeration
func (m Mood) Valid() bool {
	for _, known := range AllMoods {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMood parses a mood name case-insensitively
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q (expected one of %s)", s, moodNames())
	}
	return m, nil
}

func moodNames() string {
	names := make([]string, len(AllMoods))
	for i, m := range AllMoods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// MoodRecord is an append-only entry in a user's mood history
type MoodRecord struct {
	ID          string    `json:"id"`
	Mood        Mood      `json:"mood"`
	Timestamp   time.Time `json:"timestamp"`
	CoinsEarned int       `json:"coinsEarned"`
}

var moodIcons = map[Mood]string{
	MoodHappy:   "😊",
	MoodSad:     "😢",
	MoodAngry:   "😠",
	MoodCalm:    "😌",
	MoodExcited: "🤩",
	MoodAnxious: "😰",
}

// Icon returns the emoji shown next to the mood
func (m Mood) Icon() string {
	if icon, ok := moodIcons[m]; ok {
		return icon
	}
	return "·"
}
