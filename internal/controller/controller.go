// Package controller owns the application state. It is the single writer of
// the user's snapshot and the session, and it schedules saves to the backend
// whenever owned state changes while a user is signed in.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/gateway"
	"github.com/julianstephens/moodpet/internal/logger"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/pet"
)

var (
	// ErrEmptyToken is returned by Login when the session has no token
	ErrEmptyToken = errors.New("session token cannot be empty")
	// ErrSuperseded is returned when a load finished after the session it
	// belonged to was replaced or signed out. Its result was discarded.
	ErrSuperseded = errors.New("session changed while loading")
)

// Backend is the subset of the gateway the controller depends on
type Backend interface {
	GetActiveSession(ctx context.Context) (models.Session, bool)
	SetSession(session models.Session) error
	LoadUserData(ctx context.Context, token string) (gateway.UserData, error)
	SaveUserData(ctx context.Context, token string, snap models.Snapshot) error
	SignOut(ctx context.Context)
}

// Options tunes a Controller
type Options struct {
	// SaveDebounce coalesces saves fired within the window into one request
	// carrying the newest snapshot. Zero sends one save per change.
	SaveDebounce time.Duration
	// Now overrides the clock used for mood record timestamps
	Now func() time.Time
}

// View is an immutable copy of the controller state for rendering
type View struct {
	Snapshot models.Snapshot
	Email    string
	Auth     constants.AuthState
	Loading  bool
	Tab      constants.SessionState
}

// Authenticated reports whether a user is signed in
func (v View) Authenticated() bool {
	return v.Auth == constants.AuthAuthenticated
}

// Controller is the Application Controller
type Controller struct {
	mu      sync.Mutex
	backend Backend
	log     *log.Logger
	now     func() time.Time

	snap    models.Snapshot
	session models.Session
	auth    constants.AuthState
	loading bool
	tab     constants.SessionState

	// generation changes whenever the session is replaced or cleared.
	// Loads and saves captured under an older generation are dropped.
	generation uint64
	// saveErr is the last failed save of the current generation since the
	// previous Flush
	saveErr error

	saver saver
}

// New creates a controller holding the default snapshot in the
// Bootstrapping state. Call Bootstrap to resolve the stored session.
func New(backend Backend, opts Options) *Controller {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	c := &Controller{
		backend: backend,
		log:     logger.Component("controller"),
		now:     now,
		snap:    models.DefaultSnapshot(),
		auth:    constants.AuthBootstrapping,
		loading: true,
		tab:     constants.StateMood,
	}
	c.saver = saver{debounce: opts.SaveDebounce, send: c.send}
	return c
}

// View returns a copy of the current state
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		Snapshot: c.snap.Clone(),
		Email:    c.session.Email,
		Auth:     c.auth,
		Loading:  c.loading,
		Tab:      c.tab,
	}
}

// Bootstrap resolves the stored session and loads its data. It always ends
// with Loading cleared. A stored session whose data can't be loaded leaves
// the controller Anonymous with defaults, and the token is not kept in
// memory so defaults are never saved over remote data.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.mu.Lock()
	if c.auth != constants.AuthBootstrapping {
		c.mu.Unlock()
		return
	}
	gen := c.generation
	c.mu.Unlock()

	session, ok := c.backend.GetActiveSession(ctx)
	if !ok {
		c.mu.Lock()
		if gen == c.generation {
			c.auth = constants.AuthAnonymous
			c.loading = false
		}
		c.mu.Unlock()
		c.log.Info("Starting without a session")
		return
	}

	data, err := c.backend.LoadUserData(ctx, session.Token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.log.Debug("Discarding stale bootstrap load")
		return
	}
	c.loading = false
	if err != nil {
		c.auth = constants.AuthAnonymous
		c.log.Warn("Stored session could not be loaded, continuing offline", "error", err)
		return
	}
	c.adopt(session, data)
	c.log.Info("Restored session", "email", c.session.Email)
}

// Login stores a session obtained outside the app and loads its data. The
// session is persisted only after its data loaded successfully; on failure
// the controller keeps its previous state.
func (c *Controller) Login(ctx context.Context, session models.Session) error {
	if !session.Authenticated() {
		return ErrEmptyToken
	}

	c.mu.Lock()
	gen := c.generation
	prevLoading := c.loading
	c.loading = true
	c.mu.Unlock()

	data, err := c.backend.LoadUserData(ctx, session.Token)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.log.Debug("Discarding stale login load")
		return ErrSuperseded
	}
	if err != nil {
		c.loading = prevLoading
		c.mu.Unlock()
		return fmt.Errorf("failed to load data for session: %w", err)
	}
	c.generation++
	c.saveErr = nil
	c.saver.cancel()
	c.adopt(session, data)
	stored := c.session
	c.mu.Unlock()

	if err := c.backend.SetSession(stored); err != nil {
		c.log.Warn("Signed in but failed to persist session", "error", err)
		return fmt.Errorf("signed in, but the session was not saved: %w", err)
	}
	c.log.Info("Signed in", "email", stored.Email)
	return nil
}

// Logout signs out, forgets the session and restores the default snapshot.
// Pending saves for the old session are dropped.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	c.generation++
	c.saveErr = nil
	c.saver.cancel()
	c.snap = models.DefaultSnapshot()
	c.session = models.Session{}
	c.auth = constants.AuthAnonymous
	c.loading = false
	c.mu.Unlock()

	c.backend.SignOut(ctx)
	c.log.Info("Signed out")
}

// SubmitMood records a mood, pays the reward and updates the pet. It is
// allowed in every state; while anonymous the change stays local.
func (c *Controller) SubmitMood(mood models.Mood) (models.MoodRecord, error) {
	if !mood.Valid() {
		return models.MoodRecord{}, fmt.Errorf("unknown mood %q", mood)
	}

	record := models.MoodRecord{
		ID:          newRecordID(),
		Mood:        mood,
		Timestamp:   c.now(),
		CoinsEarned: constants.MoodReward,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.History = append([]models.MoodRecord{record}, c.snap.History...)
	c.snap.Balance += record.CoinsEarned
	c.snap.PetState = pet.ApplyMood(c.snap.PetState, mood)
	c.changed()
	return record, nil
}

// Purchase buys item if the balance covers it. An unaffordable purchase
// changes nothing and reports false.
func (c *Controller) Purchase(item models.ShopItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, balance, ok := pet.ApplyPurchase(c.snap.PetState, c.snap.Balance, item)
	if !ok {
		return false
	}
	c.snap.PetState = state
	c.snap.Balance = balance
	c.changed()
	return true
}

// SetTab selects the active tab. Tabs are view state and never saved.
func (c *Controller) SetTab(tab constants.SessionState) {
	c.mu.Lock()
	c.tab = tab
	c.mu.Unlock()
}

// Flush sends any debounced save now and waits for in-flight saves. It
// returns the last save failure since the previous Flush, if any.
func (c *Controller) Flush() error {
	c.saver.flush()

	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.saveErr
	c.saveErr = nil
	return err
}

// adopt replaces owned state with loaded data. Callers hold mu.
func (c *Controller) adopt(session models.Session, data gateway.UserData) {
	if data.Email != "" {
		session.Email = data.Email
	}
	c.session = session
	c.snap = data.Snapshot.Clone()
	c.auth = constants.AuthAuthenticated
	c.loading = false
}

// changed schedules a save of the current snapshot. Callers hold mu.
func (c *Controller) changed() {
	if c.auth != constants.AuthAuthenticated || c.loading {
		return
	}
	c.saver.schedule(pendingSave{
		token:      c.session.Token,
		generation: c.generation,
		snap:       c.snap.Clone(),
	})
}

// send performs one save unless its session has been replaced
func (c *Controller) send(p pendingSave) {
	c.mu.Lock()
	current := c.generation
	c.mu.Unlock()
	if p.generation != current {
		c.log.Debug("Dropping save for a previous session")
		return
	}

	err := c.backend.SaveUserData(context.Background(), p.token, p.snap)
	if err == nil {
		return
	}
	// Local state is never rolled back
	c.log.Warn("Save failed", "error", err)

	c.mu.Lock()
	if p.generation == c.generation {
		c.saveErr = err
	}
	c.mu.Unlock()
}

func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
