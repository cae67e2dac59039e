package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"studylog/internal/analytics"
	"studylog/internal/models"
	"studylog/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"dashboard", "stats"},
	Short:   "Show the study dashboard",
	Long: `Show streaks, the weekly goal, the minutes-per-day chart and the
study calendar. Opens an interactive dashboard by default; use --no-ui
for plain text output.

Examples:
  studylog dash                 # interactive dashboard
  studylog dash --no-ui         # plain text, current week
  studylog dash --week -1       # previous week
  studylog dash --month 2026-08 # calendar for August 2026`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		weekOffset, _ := cmd.Flags().GetInt("week")
		monthFlag, _ := cmd.Flags().GetString("month")

		today := models.DateOf(nowFunc())
		year, month := today.Year, today.Month
		if monthFlag != "" {
			t, err := time.Parse("2006-01", monthFlag)
			if err != nil {
				fail(fmt.Errorf("invalid --month %q: expected YYYY-MM", monthFlag))
				return
			}
			year, month = t.Year(), t.Month()
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunDashboard(a.tracker, weekOffset, year, month); err != nil {
				fail(err)
			}
			return
		}

		cfg := analytics.Config{
			WeeklyGoal:   a.tracker.Settings.WeeklyGoal(),
			DailyMinimum: a.tracker.Settings.DailyMinimum(),
		}
		metrics := analytics.Compute(a.tracker.Sessions.List(), cfg, today, weekOffset)
		renderDashboardText(metrics, cfg, year, month)
	},
}

func renderDashboardText(m analytics.Metrics, cfg analytics.Config, year int, month time.Month) {
	mostUsed := m.MostUsedTag
	if mostUsed == "" {
		mostUsed = "—"
	}

	fmt.Printf("Week of %s\n", m.WeekStart)
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Minutes today:      %d min\n", m.TodayMinutes)
	fmt.Printf("Minutes this week:  %d / %d min (%.0f%%)\n", m.WeeklyMinutes, cfg.WeeklyGoal, m.GoalProgress*100)
	fmt.Printf("Current streak:     %d day(s)\n", m.CurrentStreak)
	fmt.Printf("Best streak:        %d day(s)\n", m.BestStreak)
	fmt.Printf("Most used tag:      %s\n", mostUsed)

	fmt.Println("\nMinutes per day")
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, label := range labels {
		bar := strings.Repeat("█", scaleBar(m.Chart[i], m.Chart))
		fmt.Printf("  %s %4d %s\n", label, m.Chart[i], bar)
	}

	fmt.Printf("\n%s %d\n", month, year)
	fmt.Println("Mon Tue Wed Thu Fri Sat Sun")
	cells := analytics.MonthGrid(m.Qualifying, year, month)
	col := 0
	var line strings.Builder
	for _, cell := range cells {
		if cell.Day == 0 {
			line.WriteString("    ")
		} else if cell.Active {
			line.WriteString(fmt.Sprintf("[%2d]", cell.Day))
		} else {
			line.WriteString(fmt.Sprintf(" %2d ", cell.Day))
		}
		col++
		if col == 7 {
			fmt.Println(line.String())
			line.Reset()
			col = 0
		}
	}
	if line.Len() > 0 {
		fmt.Println(line.String())
	}
	fmt.Println("\n[n] marks days meeting the daily minimum")
}

// scaleBar fits the largest bucket into 30 columns.
func scaleBar(value int, chart [7]int) int {
	max := 0
	for _, v := range chart {
		if v > max {
			max = v
		}
	}
	if max == 0 || value == 0 {
		return 0
	}
	width := value * 30 / max
	if width == 0 {
		width = 1
	}
	return width
}

func init() {
	dashCmd.Flags().Int("week", 0, "Week offset (0 = current, -1 = last week)")
	dashCmd.Flags().String("month", "", "Calendar month as YYYY-MM (default: current)")
	dashCmd.Flags().Bool("no-ui", false, "Plain text output instead of the interactive dashboard")
}
