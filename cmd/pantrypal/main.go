package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "pantrypal",
		Usage: "Track your pantry, shopping list and recipes from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default $HOME/.config/pantrypal/config.toml)",
				Sources: cli.EnvVars("PANTRYPAL_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "log in as this user instead of the remembered one",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			runCmd(),
			migrateCmd(),
			importCmd(),
			exportCmd(),
			resetCmd(),
			demoCmd(),
		},
	}
}
