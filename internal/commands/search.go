package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search sessions across title, notes and tags",
	Long: `Search sessions with case-insensitive substring matching over the
title, the notes and every tag. Combine with --tags or --range the same
way as 'studylog ls'.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		filter, err := buildFilter(cmd)
		if err != nil {
			fail(err)
			return
		}
		filter.Query = strings.Join(args, " ")

		sessions := filter.Apply(a.tracker.Sessions.List(), nowFunc())
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			renderSessionsJSON(sessions)
			return
		}
		renderSessionTable(sessions, filter)
	},
}

func init() {
	searchCmd.Flags().StringSliceP("tags", "t", []string{}, "Require these tags (AND)")
	searchCmd.Flags().StringP("range", "r", "all", "Date range: all, today, 7d, month, custom")
	searchCmd.Flags().String("from", "", "Custom range start date")
	searchCmd.Flags().String("to", "", "Custom range end date")
	searchCmd.Flags().Bool("json", false, "JSON output")
}
