package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/solunahq/soluna/internal/cli"
	"github.com/solunahq/soluna/internal/dates"
	"github.com/solunahq/soluna/internal/payment"
	"github.com/solunahq/soluna/internal/storage"
	"github.com/solunahq/soluna/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/soluna/soluna.db"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize soluna storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Now     cli.NowCmd     `cmd:"" help:"Show greeting, quote, and today's progress."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show analytics and patterns."`
	Boost   cli.BoostCmd   `cmd:"" help:"Spend an AI boost for an insight."`
	Onboard cli.OnboardCmd `cmd:"" help:"Complete the onboarding questionnaire."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks."`
	Signout cli.SignoutCmd `cmd:"" help:"Sign out and erase all local data."`
	Reset   cli.ResetCmd   `cmd:"" help:"Erase all data and start fresh."`
	Habit   struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
		Done   cli.HabitDoneCmd   `cmd:"" help:"Toggle today's completion."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Profile struct {
		Show   cli.ProfileShowCmd   `cmd:"" help:"Show the profile." default:"1"`
		Name   cli.ProfileNameCmd   `cmd:"" help:"Update the display name."`
		Avatar cli.ProfileAvatarCmd `cmd:"" help:"Update the avatar URI."`
	} `cmd:"" help:"Manage the profile."`
	Premium struct {
		Plans   cli.PremiumPlansCmd   `cmd:"" help:"Show subscription plans."`
		Upgrade cli.PremiumUpgradeCmd `cmd:"" help:"Subscribe to a plan."`
		Status  cli.PremiumStatusCmd  `cmd:"" help:"Show subscription status."`
		Cancel  cli.PremiumCancelCmd  `cmd:"" help:"Cancel the subscription."`
		Restore cli.PremiumRestoreCmd `cmd:"" help:"Restore previous purchases."`
	} `cmd:"" help:"Manage the premium subscription."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	// Optional .env next to the binary; missing file is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("soluna"),
		kong.Description("Habit tracker with streaks, analytics, and AI insights"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	log := zap.NewNop()
	if CLI.Verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	// Storage format follows the file extension.
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}

	payments, err := payment.FromEnv(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	clock := dates.System()
	s := store.New(provider, clock, log)

	appCtx := &cli.Context{
		Store:       s,
		Storage:     provider,
		Payment:     payments,
		Clock:       clock,
		StoragePath: CLI.Config,
	}

	err = ctx.Run(appCtx)
	if closeErr := s.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
