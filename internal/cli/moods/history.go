package moods

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/moodpet/internal/cli"
)

type HistoryCmd struct {
	Limit int `help:"Show at most this many entries (0 for all)." short:"n" default:"20"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	if c.Limit < 0 {
		return errors.New("--limit must not be negative")
	}

	v := ctx.Bootstrap(context.Background())
	history := v.Snapshot.History
	if len(history) == 0 {
		fmt.Println("No moods logged yet")
		return nil
	}

	shown := history
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}
	fmt.Println("Mood history (newest first):")
	for _, r := range shown {
		fmt.Printf("  %s\n", cli.FormatRecord(r))
	}
	if len(shown) < len(history) {
		fmt.Printf("  ... %d older entries\n", len(history)-len(shown))
	}
	return nil
}
