package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "Manage the recycle bin",
	Long: `List, restore, and permanently delete soft-deleted sessions.
Entries older than the retention window are purged automatically.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBinList()
	},
}

var binListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List recycle bin entries",
	Run: func(cmd *cobra.Command, args []string) {
		runBinList()
	},
}

func runBinList() {
	a, err := openApp()
	if err != nil {
		fail(err)
		return
	}
	defer a.Close()

	entries := a.tracker.Bin.List()
	if len(entries) == 0 {
		fmt.Println("Recycle bin is empty.")
		return
	}

	fmt.Printf("%-10s %-34s %-12s %-7s %s\n", "ID", "TITLE", "DATE", "MIN", "DELETED")
	fmt.Println(strings.Repeat("-", 80))
	now := nowFunc()
	for _, entry := range entries {
		s := entry.Session
		title := s.Title
		if len(title) > 32 {
			title = title[:29] + "..."
		}
		age := now.Sub(time.UnixMilli(entry.DeletedAt))
		fmt.Printf("%-10s %-34s %-12s %-7d %s\n",
			shortID(s.ID), title, s.Date.String(), s.Minutes, formatAge(age))
	}
	fmt.Printf("\n%d entry(ies)\n", len(entries))
}

func formatAge(d time.Duration) string {
	days := int(d.Hours() / 24)
	switch {
	case days >= 1:
		return fmt.Sprintf("%d day(s) ago", days)
	case d.Hours() >= 1:
		return fmt.Sprintf("%.0fh ago", d.Hours())
	default:
		return "just now"
	}
}

var binRestoreCmd = &cobra.Command{
	Use:   "restore <session-id>",
	Short: "Restore a session from the recycle bin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		session, err := a.tracker.RestoreSession(args[0])
		if err != nil {
			fail(err)
			return
		}
		fmt.Printf("♻️  Restored \"%s\" (%d min on %s)\n", session.Title, session.Minutes, session.Date)
	},
}

var binDeleteCmd = &cobra.Command{
	Use:     "rm <session-id>",
	Aliases: []string{"delete"},
	Short:   "Permanently delete a binned session",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		id, err := a.tracker.Bin.ResolveID(args[0])
		if err != nil {
			fail(err)
			return
		}
		session, err := a.tracker.Bin.DeletePermanently(id)
		if err != nil {
			fail(err)
			return
		}
		fmt.Printf("🧹 Permanently deleted \"%s\"\n", session.Title)
	},
}

var binEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Empty the recycle bin",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		count := a.tracker.Bin.Len()
		a.tracker.Bin.PurgeAll()
		fmt.Printf("🧹 Emptied the recycle bin (%d entry(ies) removed)\n", count)
	},
}

func init() {
	binCmd.AddCommand(binListCmd)
	binCmd.AddCommand(binRestoreCmd)
	binCmd.AddCommand(binDeleteCmd)
	binCmd.AddCommand(binEmptyCmd)
}
