package commands

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"studylog/internal/data"
	"studylog/internal/models"
	"studylog/internal/parser"
	"studylog/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List study sessions",
	Long:    "List study sessions with optional free-text, tag, and date-range filters",
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

		if ui, _ := cmd.Flags().GetBool("ui"); ui {
			if err := tui.RunSessionList(a.tracker, filter); err != nil {
				fail(err)
			}
			return
		}

		sessions := filter.Apply(a.tracker.Sessions.List(), nowFunc())
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			renderSessionsJSON(sessions)
			return
		}
		renderSessionTable(sessions, filter)
	},
}

func buildFilter(cmd *cobra.Command) (data.Filter, error) {
	query, _ := cmd.Flags().GetString("search")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	rangeFlag, _ := cmd.Flags().GetString("range")

	rng, err := data.ParseRange(rangeFlag)
	if err != nil {
		return data.Filter{}, err
	}

	filter := data.Filter{Query: query, Tags: tags, Range: rng}

	if from, _ := cmd.Flags().GetString("from"); from != "" {
		date, err := parser.ParseDay(from)
		if err != nil {
			return data.Filter{}, fmt.Errorf("invalid --from date: %w", err)
		}
		filter.Start = date
		filter.Range = data.RangeCustom
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		date, err := parser.ParseDay(to)
		if err != nil {
			return data.Filter{}, fmt.Errorf("invalid --to date: %w", err)
		}
		filter.End = date
		filter.Range = data.RangeCustom
	}

	return filter, nil
}

func renderSessionTable(sessions []models.Session, filter data.Filter) {
	if len(sessions) == 0 {
		if filter.IsZero() {
			fmt.Println("No sessions yet. Use 'studylog add \"what you studied\"' to log your first session.")
		} else {
			fmt.Println("No sessions match the current filter.")
		}
		return
	}

	fmt.Printf("%-10s %-34s %-12s %-7s %s\n", "ID", "TITLE", "DATE", "MIN", "TAGS")
	fmt.Println(strings.Repeat("-", 80))

	for _, s := range sessions {
		title := s.Title
		if len(title) > 32 {
			title = title[:29] + "..."
		}
		fmt.Printf("%-10s %-34s %-12s %-7d %s\n",
			shortID(s.ID),
			title,
			s.Date.String(),
			s.Minutes,
			strings.Join(s.Tags, ","))
	}
	fmt.Printf("\n%d session(s)\n", len(sessions))
}

func renderSessionsJSON(sessions []models.Session) {
	raw, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		fail(err)
		return
	}
	fmt.Println(string(raw))
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "Free-text search over title, notes and tags")
	listCmd.Flags().StringSliceP("tags", "t", []string{}, "Require these tags (AND)")
	listCmd.Flags().StringP("range", "r", "all", "Date range: all, today, 7d, month, custom")
	listCmd.Flags().String("from", "", "Custom range start date")
	listCmd.Flags().String("to", "", "Custom range end date")
	listCmd.Flags().Bool("json", false, "JSON output")
	listCmd.Flags().Bool("ui", false, "Interactive session browser")
}
