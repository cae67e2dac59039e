package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"studylog/internal/config"
	"studylog/internal/data"
	"studylog/internal/logging"
	"studylog/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "studylog",
	Short: "A CLI study session tracker",
	Long: `studylog is a command-line study tracker. Log study sessions with
tags and notes, follow streaks and weekly goals on the dashboard, and
manage your history with a recycle bin and JSON import/export.`,
}

// app bundles everything a command needs: config, logger, the opened
// store and the tracker services built on it.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   *store.Store
	tracker *data.Tracker
}

// openApp loads configuration and opens the store. Commands call this
// at the top of their Run func and defer Close.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logging.New(cfg.LogLevel)

	st, err := store.Open(cfg.StorePath())
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		log:     log,
		store:   st,
		tracker: data.NewTracker(st, cfg.Retention(), log),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("failed to close store")
	}
}

// fail prints a command error the way every subcommand reports them.
func fail(err error) {
	fmt.Printf("Error: %v\n", err)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studylog %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(binCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
