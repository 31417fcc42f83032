package system

import (
	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Bootstrap runs inside the program so the spinner shows while loading
	if err := tui.Run(ctx.Controller, ctx.Catalog); err != nil {
		return err
	}
	// Save failures were logged as they happened and later saves carry the full snapshot
	_ = ctx.Controller.Flush()
	return nil
}
