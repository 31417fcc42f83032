package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/cli/account"
	"github.com/julianstephens/moodpet/internal/cli/devbackend"
	"github.com/julianstephens/moodpet/internal/cli/moods"
	"github.com/julianstephens/moodpet/internal/cli/purchases"
	"github.com/julianstephens/moodpet/internal/cli/system"
	"github.com/julianstephens/moodpet/internal/config"
	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/errors"
	"github.com/julianstephens/moodpet/internal/keyring"
	"github.com/julianstephens/moodpet/internal/logger"
)

var CLI struct {
	Version    kong.VersionFlag
	BackendURL string `help:"Backend base URL (overrides MOODPET_BACKEND_URL)." name:"backend-url"`
	ConfigDir  string `help:"Directory for logs (overrides MOODPET_CONFIG_DIR)." name:"config-dir" type:"path"`
	Debug      bool   `help:"Enable debug logging to stderr."`

	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Login   account.LoginCmd  `cmd:"" help:"Log in with a backend access token."`
	Logout  account.LogoutCmd `cmd:"" help:"Log out and forget the stored session."`
	Status  account.StatusCmd `cmd:"" help:"Show account, coins and pet."`
	Mood    moods.MoodCmd     `cmd:"" help:"Log a mood and earn coins."`
	History moods.HistoryCmd  `cmd:"" help:"Show logged moods."`
	Shop    purchases.ShopCmd `cmd:"" help:"List items for sale."`
	Buy     purchases.BuyCmd  `cmd:"" help:"Buy an item for your pet."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Keyring struct {
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability and the stored session." default:"1"`
	} `cmd:"" help:"Inspect the OS keyring."`
	Backend struct {
		Serve   devbackend.ServeCmd   `cmd:"" help:"Run the local development backend."`
		AddUser devbackend.AddUserCmd `cmd:"" help:"Register an email and print its access token." name:"add-user"`
		Migrate devbackend.MigrateCmd `cmd:"" help:"Apply backend database migrations."`
	} `cmd:"" help:"Local development backend."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Log your moods, earn coins, and look after a virtual pet"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	errors.Fatal(err)
	if CLI.BackendURL != "" {
		cfg.BackendURL = CLI.BackendURL
	}
	if CLI.ConfigDir != "" {
		cfg.ConfigDir = CLI.ConfigDir
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	errors.Fatal(cfg.Normalize())

	errors.Fatal(logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: cfg.ConfigDir,
	}))

	appCtx := cli.NewContext(cfg, keyring.Provider{})
	errors.Fatal(ctx.Run(appCtx))
}
