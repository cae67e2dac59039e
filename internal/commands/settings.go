package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change tracker settings",
	Long: `Show or change the weekly goal and the daily minimum. The weekly
goal is the minutes-per-week target the dashboard donut measures
against; the daily minimum is how many minutes a day needs before it
counts toward streaks and calendar highlights.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSettingsShow()
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Run: func(cmd *cobra.Command, args []string) {
		runSettingsShow()
	},
}

func runSettingsShow() {
	a, err := openApp()
	if err != nil {
		fail(err)
		return
	}
	defer a.Close()

	fmt.Printf("Weekly goal:    %d min\n", a.tracker.Settings.WeeklyGoal())
	fmt.Printf("Daily minimum:  %d min\n", a.tracker.Settings.DailyMinimum())
}

var settingsGoalCmd = &cobra.Command{
	Use:   "goal <minutes>",
	Short: "Set the weekly study goal in minutes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setSetting(args[0], "weekly goal", func(a *app, n int) error {
			return a.tracker.Settings.SetWeeklyGoal(n)
		})
	},
}

var settingsMinimumCmd = &cobra.Command{
	Use:   "minimum <minutes>",
	Short: "Set the daily minimum in minutes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setSetting(args[0], "daily minimum", func(a *app, n int) error {
			return a.tracker.Settings.SetDailyMinimum(n)
		})
	},
}

func setSetting(arg, label string, apply func(*app, int) error) {
	minutes, err := strconv.Atoi(arg)
	if err != nil || minutes < 0 {
		fail(fmt.Errorf("invalid value %q: expected a non-negative number of minutes", arg))
		return
	}

	a, err := openApp()
	if err != nil {
		fail(err)
		return
	}
	defer a.Close()

	if err := apply(a, minutes); err != nil {
		fail(err)
		return
	}
	fmt.Printf("⚙️  Set %s to %d min\n", label, minutes)
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGoalCmd)
	settingsCmd.AddCommand(settingsMinimumCmd)
}
