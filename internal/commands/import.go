package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sessions from a JSON file",
	Long: `Read a JSON array of sessions and append the valid ones. Records
missing a title or date, records without a tags array, and records
whose id already exists are skipped and reported; tags of accepted
sessions are merged into the taxonomy.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		result, err := a.tracker.ImportSessions(args[0])
		if err != nil {
			fail(err)
			return
		}

		fmt.Printf("📥 Imported %d session(s) from %s\n", result.Added, args[0])
		if len(result.Skipped) > 0 {
			fmt.Printf("⚠️  Skipped %d record(s):\n", len(result.Skipped))
			for _, skipped := range result.Skipped {
				label := skipped.Title
				if label == "" {
					label = fmt.Sprintf("record %d", skipped.Index)
				}
				fmt.Printf("  - %s: %s\n", label, skipped.Reason)
			}
		}
	},
}
