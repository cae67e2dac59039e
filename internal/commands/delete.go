package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm <session-id>",
	Aliases: []string{"delete"},
	Short:   "Move a session to the recycle bin",
	Long: `Soft-delete a session. It moves to the recycle bin, where it can be
restored for 7 days (configurable) before it is purged for good.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		session, err := a.tracker.DeleteSession(args[0])
		if err != nil {
			fail(err)
			return
		}

		fmt.Printf("🗑️  Moved \"%s\" to the recycle bin\n", session.Title)
		fmt.Printf("Restore it with 'studylog bin restore %s'\n", shortID(session.ID))
	},
}
