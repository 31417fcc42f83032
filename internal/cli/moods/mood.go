package moods

import (
	"context"
	"fmt"

	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/internal/pet"
)

type MoodCmd struct {
	Mood string `arg:"" help:"One of happy, sad, angry, calm, excited, anxious."`
}

func (c *MoodCmd) Run(ctx *cli.Context) error {
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}

	v := ctx.Bootstrap(context.Background())
	cli.WarnIfOffline(v)

	record, err := ctx.Controller.SubmitMood(mood)
	if err != nil {
		return err
	}
	if err := ctx.Controller.Flush(); err != nil {
		return fmt.Errorf("logged %s locally, but it was not saved: %w", mood, err)
	}

	effect := pet.EffectFor(mood)
	v = ctx.Controller.View()
	fmt.Printf("%s Logged %s (+%d coins, happiness %+d)\n", mood.Icon(), mood, record.CoinsEarned, effect.HappinessDelta)
	fmt.Printf("  %s\n", cli.FormatPet(v.Snapshot.PetName, v.Snapshot.PetState))
	fmt.Printf("  Balance: %d coins\n", v.Snapshot.Balance)
	return nil
}
