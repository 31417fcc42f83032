package account

import (
	"context"
	"fmt"

	"github.com/julianstephens/moodpet/internal/cli"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	ctx.Controller.Logout(context.Background())
	fmt.Println("✓ Logged out")
	return nil
}
