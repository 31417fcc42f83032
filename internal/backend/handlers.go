package backend

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julianstephens/moodpet/internal/backend/store"
	"github.com/julianstephens/moodpet/internal/models"
)

const maxSnapshotBytes = 1 << 20

type userInfo struct {
	Email string `json:"email"`
}

// fetchResponse is the fetch-user-data body: the snapshot plus the caller
type fetchResponse struct {
	models.Snapshot
	User userInfo `json:"user"`
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	u, _ := userFrom(r.Context())

	snap, err := s.store.GetSnapshot(r.Context(), u.Token)
	switch {
	case errors.Is(err, store.ErrNotFound):
		snap = models.DefaultSnapshot()
	case err != nil:
		s.log.Error("Failed to load snapshot", "email", u.Email, "error", err)
		WriteError(w, http.StatusInternalServerError, "failed to load user data")
		return
	}

	WriteJSON(w, http.StatusOK, fetchResponse{Snapshot: snap, User: userInfo{Email: u.Email}})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	u, _ := userFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxSnapshotBytes)
	var snap models.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "snapshot too large")
			return
		}
		WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if snap.History == nil {
		snap.History = []models.MoodRecord{}
	}
	if err := snap.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SaveSnapshot(r.Context(), u.Token, snap); err != nil {
		s.log.Error("Failed to save snapshot", "email", u.Email, "error", err)
		WriteError(w, http.StatusInternalServerError, "failed to save user data")
		return
	}
	snapshotsSavedTotal.Inc()
	s.log.Debug("Saved snapshot", "email", u.Email, "coins", snap.Balance, "history", len(snap.History))

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.log.Warn("Health check failed", "error", err)
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
