package purchases

import (
	"context"
	"fmt"

	"github.com/julianstephens/moodpet/internal/cli"
)

type BuyCmd struct {
	Item string `arg:"" help:"Item id, see 'moodpet shop'."`
}

func (c *BuyCmd) Run(ctx *cli.Context) error {
	item, err := ctx.Catalog.Find(c.Item)
	if err != nil {
		return err
	}

	v := ctx.Bootstrap(context.Background())
	cli.WarnIfOffline(v)

	if !ctx.Controller.Purchase(item) {
		return fmt.Errorf("not enough coins: %s costs %d, you have %d",
			item.Name, item.Price, v.Snapshot.Balance)
	}
	if err := ctx.Controller.Flush(); err != nil {
		return fmt.Errorf("bought %s locally, but it was not saved: %w", item.Name, err)
	}

	v = ctx.Controller.View()
	fmt.Printf("%s Bought %s for %d coins\n", item.Icon, item.Name, item.Price)
	fmt.Printf("  %s\n", cli.FormatPet(v.Snapshot.PetName, v.Snapshot.PetState))
	fmt.Printf("  Balance: %d coins\n", v.Snapshot.Balance)
	return nil
}
