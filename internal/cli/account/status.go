package account

import (
	"context"
	"fmt"

	"github.com/julianstephens/moodpet/internal/cli"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	v := ctx.Bootstrap(context.Background())

	if v.Authenticated() {
		fmt.Printf("Account: %s\n", v.Email)
	} else {
		fmt.Println("Account: not logged in")
	}
	fmt.Printf("Coins:   %d\n", v.Snapshot.Balance)
	fmt.Printf("Pet:     %s\n", cli.FormatPet(v.Snapshot.PetName, v.Snapshot.PetState))
	fmt.Printf("Moods:   %d logged\n", len(v.Snapshot.History))
	if len(v.Snapshot.History) > 0 {
		fmt.Printf("Latest:  %s\n", cli.FormatRecord(v.Snapshot.History[0]))
	}
	return nil
}
