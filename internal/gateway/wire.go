package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
)

// Wire schema of the fetch-user-data and save-user-data functions.

type wirePetState struct {
	Appearance  string `json:"appearance"`
	Personality string `json:"personality"`
	Happiness   *int   `json:"happiness"`
	Hunger      *int   `json:"hunger"`
}

type wireMoodRecord struct {
	ID          string `json:"id"`
	Mood        string `json:"mood"`
	Timestamp   string `json:"timestamp"`
	CoinsEarned int    `json:"coinsEarned"`
}

type wireUser struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
}

type userDataResponse struct {
	Coins       *int             `json:"coins"`
	PetName     string           `json:"petName"`
	PetState    *wirePetState    `json:"petState"`
	MoodHistory []wireMoodRecord `json:"moodHistory"`
	User        *wireUser        `json:"user"`
}

type saveRequest struct {
	Coins       int              `json:"coins"`
	PetName     string           `json:"petName"`
	PetState    wirePetState     `json:"petState"`
	MoodHistory []wireMoodRecord `json:"moodHistory"`
}

// UserData is a decoded fetch-user-data response
type UserData struct {
	Snapshot models.Snapshot
	Email    string
}

func inStatRange(v int) bool {
	return v >= constants.MinStat && v <= constants.MaxStat
}

// decodeUserData parses and validates a fetch-user-data body
func decodeUserData(body []byte) (UserData, error) {
	var resp userDataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return UserData{}, err
	}

	if resp.Coins == nil {
		return UserData{}, errors.New("missing coins")
	}
	if *resp.Coins < 0 {
		return UserData{}, fmt.Errorf("negative coin balance %d", *resp.Coins)
	}
	if resp.PetState == nil || resp.PetState.Happiness == nil || resp.PetState.Hunger == nil {
		return UserData{}, errors.New("missing pet state")
	}
	if !inStatRange(*resp.PetState.Happiness) || !inStatRange(*resp.PetState.Hunger) {
		return UserData{}, fmt.Errorf("pet stats out of range (happiness=%d, hunger=%d)", *resp.PetState.Happiness, *resp.PetState.Hunger)
	}

	snap := models.Snapshot{
		Balance: *resp.Coins,
		PetName: resp.PetName,
		PetState: models.PetState{
			Appearance:  resp.PetState.Appearance,
			Personality: resp.PetState.Personality,
			Happiness:   *resp.PetState.Happiness,
			Hunger:      *resp.PetState.Hunger,
		},
		History: make([]models.MoodRecord, 0, len(resp.MoodHistory)),
	}
	if snap.PetName == "" {
		snap.PetName = constants.DefaultPetName
	}

	for i, rec := range resp.MoodHistory {
		mood := models.Mood(rec.Mood)
		if !mood.Valid() {
			return UserData{}, fmt.Errorf("mood history entry %d: unknown mood %q", i, rec.Mood)
		}
		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			return UserData{}, fmt.Errorf("mood history entry %d: invalid timestamp %q: %w", i, rec.Timestamp, err)
		}
		snap.History = append(snap.History, models.MoodRecord{
			ID:          rec.ID,
			Mood:        mood,
			Timestamp:   ts,
			CoinsEarned: rec.CoinsEarned,
		})
	}

	// Anything the backend would refuse on the next save is refused here
	if err := snap.Validate(); err != nil {
		return UserData{}, err
	}

	data := UserData{Snapshot: snap}
	if resp.User != nil {
		data.Email = resp.User.Email
	}
	return data, nil
}

// encodeSnapshot builds the save-user-data request body
func encodeSnapshot(snap models.Snapshot) saveRequest {
	happiness, hunger := snap.PetState.Happiness, snap.PetState.Hunger
	req := saveRequest{
		Coins:   snap.Balance,
		PetName: snap.PetName,
		PetState: wirePetState{
			Appearance:  snap.PetState.Appearance,
			Personality: snap.PetState.Personality,
			Happiness:   &happiness,
			Hunger:      &hunger,
		},
		MoodHistory: make([]wireMoodRecord, len(snap.History)),
	}
	for i, rec := range snap.History {
		req.MoodHistory[i] = wireMoodRecord{
			ID:          rec.ID,
			Mood:        string(rec.Mood),
			Timestamp:   rec.Timestamp.UTC().Format(time.RFC3339Nano),
			CoinsEarned: rec.CoinsEarned,
		}
	}
	return req
}
