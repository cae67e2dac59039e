package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studylog/internal/data"
	"studylog/internal/models"
	"studylog/internal/parser"
	"studylog/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [session description]",
	Short: "Log a study session",
	Long: `Log a new study session.

Modes:
  Interactive: studylog add -i (or just 'studylog add' with no arguments)
  Quick: studylog add "Calculus revision" -m 45 -t math,exam
  Quick parsing: studylog add "Calculus revision #math,exam 45min on:today"

Quick parsing syntax:
  #tag1,tag2  - Tags (comma-separated or individual)
  45min / 45m - Duration in minutes (1-600)
  on:DATE     - Date (YYYY-MM-DD, dd/mm/yyyy, today, yesterday)`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) == 0 && !interactive {
			interactive = true
		}

		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		input, parseErrs := buildAddInput(cmd, args)

		if interactive || len(parseErrs) > 0 {
			if len(parseErrs) > 0 {
				fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parseErrs, ", "))
				fmt.Println("Opening interactive mode for confirmation...")
			}
			if err := tui.RunSessionForm(a.tracker, tui.FormCreate, "", input); err != nil {
				fail(err)
			}
			return
		}

		session, err := a.tracker.CreateSession(input)
		if err != nil {
			fail(err)
			return
		}

		fmt.Printf("✅ Logged \"%s\" (%d min on %s) - id %s\n",
			session.Title, session.Minutes, session.Date, shortID(session.ID))
		if len(session.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(session.Tags, ", "))
		}
	},
}

// buildAddInput merges quick-entry parsing with explicit flags; flags
// take precedence.
func buildAddInput(cmd *cobra.Command, args []string) (data.SessionInput, []string) {
	input := data.SessionInput{Date: models.DateOf(nowFunc())}
	var errs []string

	if len(args) > 0 {
		parsed := parser.ParseEntry(strings.Join(args, " "))
		input.Title = parsed.Title
		input.Tags = parsed.Tags
		if parsed.Minutes > 0 {
			input.Minutes = parsed.Minutes
		}
		if !parsed.Date.IsZero() {
			input.Date = parsed.Date
		}
		errs = parsed.Errors
	}

	if minutes, _ := cmd.Flags().GetInt("minutes"); minutes > 0 {
		input.Minutes = minutes
	}
	if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
		input.Tags = tags
	}
	if notes, _ := cmd.Flags().GetString("notes"); notes != "" {
		input.Notes = notes
	}
	if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
		date, err := parser.ParseDay(dateFlag)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			input.Date = date
		}
	}

	return input, errs
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().IntP("minutes", "m", 0, "Session length in minutes (1-600)")
	addCmd.Flags().StringP("date", "d", "", "Session date (YYYY-MM-DD, today, yesterday)")
	addCmd.Flags().StringSliceP("tags", "t", []string{}, "Comma-separated tags")
	addCmd.Flags().StringP("notes", "n", "", "Session notes (max 200 chars)")
}
