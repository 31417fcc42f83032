package models

import (
	"fmt"

	"github.com/julianstephens/moodpet/internal/constants"
)

// Snapshot is the complete serializable state a user owns
type Snapshot struct {
	Balance  int          `json:"coins"`
	PetName  string       `json:"petName"`
	PetState PetState     `json:"petState"`
	History  []MoodRecord `json:"moodHistory"`
}

// DefaultSnapshot returns the hardcoded state used on startup and after logout
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Balance:  constants.DefaultBalance,
		PetName:  constants.DefaultPetName,
		PetState: DefaultPetState(),
		History:  []MoodRecord{},
	}
}

// Clone returns a deep copy so callers can't alias the history slice
func (s Snapshot) Clone() Snapshot {
	out := s
	out.History = make([]MoodRecord, len(s.History))
	copy(out.History, s.History)
	return out
}

// Session identifies an authenticated user. An empty Token means "not authenticated".
type Session struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// Authenticated reports whether the session carries a bearer token
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Validate checks the invariants every stored snapshot must hold
func (s Snapshot) Validate() error {
	if s.Balance < 0 {
		return fmt.Errorf("coins must not be negative, got %d", s.Balance)
	}
	if err := s.PetState.Validate(); err != nil {
		return err
	}
	for i, r := range s.History {
		if !r.Mood.Valid() {
			return fmt.Errorf("moodHistory[%d]: unknown mood %q", i, r.Mood)
		}
		if r.ID == "" {
			return fmt.Errorf("moodHistory[%d]: missing id", i)
		}
		if r.CoinsEarned < 0 {
			return fmt.Errorf("moodHistory[%d]: coinsEarned must not be negative, got %d", i, r.CoinsEarned)
		}
	}
	return nil
}
