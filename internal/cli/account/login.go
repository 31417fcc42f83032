package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/models"
)

type LoginCmd struct {
	Email string `help:"Account email." short:"e"`
	Token string `help:"Access token issued by the backend. Prompted for when omitted." short:"t"`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if c.Token == "" {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	session := models.Session{
		Token: strings.TrimSpace(c.Token),
		Email: strings.TrimSpace(c.Email),
	}
	if !session.Authenticated() {
		return errors.New("a token is required to log in")
	}

	if err := ctx.Controller.Login(context.Background(), session); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	v := ctx.Controller.View()
	fmt.Printf("✓ Logged in as %s\n", v.Email)
	fmt.Printf("  %d coins · %d moods logged\n", v.Snapshot.Balance, len(v.Snapshot.History))
	return nil
}

func (c *LoginCmd) prompt() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&c.Email),
			huh.NewInput().
				Title("Access token").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("token cannot be empty")
					}
					return nil
				}).
				Value(&c.Token),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	return nil
}
