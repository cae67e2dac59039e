package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all sessions to a JSON file",
	Long: `Write the full session collection to a pretty-printed JSON array.
The file round-trips through 'studylog import' and through the original
web tracker.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		count, err := a.tracker.ExportSessions(args[0])
		if err != nil {
			fail(err)
			return
		}
		fmt.Printf("📤 Exported %d session(s) to %s\n", count, args[0])
	},
}
