package main

import (
	"fmt"
	"os"
	"runtime"

	"guessing-game/internal/app"
	"guessing-game/internal/config"
	"guessing-game/internal/logger"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "guessing-game",
		Short:         "Guess the hidden number in a desktop window",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, configFile)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	root.Flags().StringVar(&configFile, "config", "", "path to a guessing-game.yaml file")
	config.RegisterFlags(root)
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", app.AppName, app.AppVersion, runtime.Version())
		},
	}
}

func run(cfg config.Config) error {
	log := logger.New(cfg.Log.Level, cfg.Log.JSON)

	log.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.Log.Level,
	})

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)

	application, err := app.NewApplication(fyneApp, cfg, log)
	if err != nil {
		log.Error("Main", "initialization failed", err, nil)
		return err
	}

	if err := application.Run(); err != nil {
		log.Error("Main", "run failed", err, nil)
		return err
	}

	log.Info("Main", "terminated", nil)
	return nil
}
