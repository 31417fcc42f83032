package purchases

import (
	"context"
	"fmt"

	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/shop"
)

type ShopCmd struct{}

func (c *ShopCmd) Run(ctx *cli.Context) error {
	v := ctx.Bootstrap(context.Background())
	balance := v.Snapshot.Balance

	fmt.Printf("Shop (you have %d coins):\n", balance)
	for _, item := range ctx.Catalog {
		marker := " "
		if balance >= item.Price {
			marker = "✓"
		}
		fmt.Printf("  %s %s %-6s %-12s %4d coins  %s\n",
			marker, item.Icon, item.ID, item.Name, item.Price, shop.DescribeEffect(item.Effect))
	}
	fmt.Println("\nBuy with: moodpet buy <id>")
	return nil
}
