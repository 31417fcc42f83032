// Package cli holds the state shared by every moodpet command.
package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/moodpet/internal/config"
	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/controller"
	"github.com/julianstephens/moodpet/internal/gateway"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/pet"
	"github.com/julianstephens/moodpet/internal/shop"
)

type Context struct {
	Config     *config.Config
	Gateway    *gateway.Gateway
	Controller *controller.Controller
	Catalog    shop.Catalog
}

// NewContext wires the gateway and controller for cfg
func NewContext(cfg *config.Config, sessions gateway.SessionProvider) *Context {
	gw := gateway.New(gateway.Config{
		BaseURL: cfg.BackendURL,
		APIKey:  cfg.BackendKey,
		Timeout: cfg.HTTPTimeout,
	}, sessions)

	return &Context{
		Config:     cfg,
		Gateway:    gw,
		Controller: controller.New(gw, controller.Options{SaveDebounce: cfg.SaveDebounce}),
		Catalog:    shop.Default(),
	}
}

// Bootstrap resolves the stored session for one-shot commands
func (c *Context) Bootstrap(ctx context.Context) controller.View {
	c.Controller.Bootstrap(ctx)
	return c.Controller.View()
}

// WarnIfOffline tells the user that changes made now won't reach the backend
func WarnIfOffline(v controller.View) {
	if !v.Authenticated() {
		fmt.Println("⚠ Not logged in: changes are kept for this run only. Use 'moodpet login' to sync.")
	}
}

// FormatPet renders a one-line pet summary
func FormatPet(name string, s models.PetState) string {
	return fmt.Sprintf("%s is %s (%s, %s) · happiness %d/%d · hunger %d/%d",
		name, pet.Describe(s), s.Appearance, s.Personality,
		s.Happiness, constants.MaxStat, s.Hunger, constants.MaxStat)
}

// FormatRecord renders one mood history entry
func FormatRecord(r models.MoodRecord) string {
	return fmt.Sprintf("%s %s %-8s +%d coins",
		r.Timestamp.Local().Format(constants.DateTimeFormat), r.Mood.Icon(), r.Mood, r.CoinsEarned)
}
