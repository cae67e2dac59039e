package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studylog/internal/data"
	"studylog/internal/parser"
	"studylog/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Edit an existing session",
	Long: `Edit an existing session. Opens the same form as 'studylog add'
pre-populated with the current values; pass field flags to edit
directly without the UI. Ids may be abbreviated to a unique prefix.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		id, err := a.tracker.Sessions.ResolveID(args[0])
		if err != nil {
			fail(err)
			return
		}
		session, _ := a.tracker.Sessions.Get(id)

		input := data.SessionInput{
			Title:   session.Title,
			Minutes: session.Minutes,
			Date:    session.Date,
			Tags:    session.Tags,
			Notes:   session.Notes,
		}

		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("minutes") &&
			!cmd.Flags().Changed("date") && !cmd.Flags().Changed("tags") &&
			!cmd.Flags().Changed("notes") {
			if err := tui.RunSessionForm(a.tracker, tui.FormEdit, id, input); err != nil {
				fail(err)
			}
			return
		}

		if cmd.Flags().Changed("title") {
			input.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("minutes") {
			input.Minutes, _ = cmd.Flags().GetInt("minutes")
		}
		if cmd.Flags().Changed("date") {
			dateFlag, _ := cmd.Flags().GetString("date")
			date, err := parser.ParseDay(dateFlag)
			if err != nil {
				fail(err)
				return
			}
			input.Date = date
		}
		if cmd.Flags().Changed("tags") {
			input.Tags, _ = cmd.Flags().GetStringSlice("tags")
		}
		if cmd.Flags().Changed("notes") {
			input.Notes, _ = cmd.Flags().GetString("notes")
		}

		updated, err := a.tracker.UpdateSession(id, input)
		if err != nil {
			fail(err)
			return
		}

		fmt.Printf("✏️  Updated \"%s\" (%d min on %s)\n", updated.Title, updated.Minutes, updated.Date)
		if len(updated.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(updated.Tags, ", "))
		}
	},
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().IntP("minutes", "m", 0, "New session length in minutes")
	editCmd.Flags().StringP("date", "d", "", "New date")
	editCmd.Flags().StringSliceP("tags", "t", []string{}, "Replacement tag list")
	editCmd.Flags().StringP("notes", "n", "", "New notes")
}
