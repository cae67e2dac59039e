package commands

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"studylog/internal/data"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage the tag taxonomy",
	Long: `List, create and delete tags. A tag can only be deleted while no
active session references it.`,
	Run: func(cmd *cobra.Command, args []string) {
		runTagsList(cmd)
	},
}

var tagsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List tags with usage counts",
	Run: func(cmd *cobra.Command, args []string) {
		runTagsList(cmd)
	},
}

func runTagsList(cmd *cobra.Command) {
	a, err := openApp()
	if err != nil {
		fail(err)
		return
	}
	defer a.Close()

	tags := a.tracker.Tags.List()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		raw, err := json.MarshalIndent(tags, "", "  ")
		if err != nil {
			fail(err)
			return
		}
		fmt.Println(string(raw))
		return
	}

	fmt.Printf("%-20s %-20s %s\n", "TAG", "ID", "IN USE BY")
	fmt.Println(strings.Repeat("-", 50))
	for _, tag := range tags {
		fmt.Printf("%-20s %-20s %d session(s)\n", tag.Name, tag.ID, tag.Count)
	}
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		name := data.FormatTagName(args[0])
		if name == "" {
			fail(fmt.Errorf("tag name must not be empty"))
			return
		}
		if _, exists := a.tracker.Tags.Get(name); exists {
			fail(fmt.Errorf("tag %q already exists", name))
			return
		}
		a.tracker.Tags.AddIfMissing(name)
		fmt.Printf("🏷️  Created tag %q\n", name)
	},
}

var tagsDeleteCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Delete an unused tag",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fail(err)
			return
		}
		defer a.Close()

		if err := a.tracker.Tags.Delete(args[0]); err != nil {
			fail(err)
			return
		}
		fmt.Printf("🏷️  Deleted tag %q\n", strings.TrimSpace(args[0]))
	},
}

func init() {
	tagsCmd.Flags().Bool("json", false, "JSON output")
	tagsListCmd.Flags().Bool("json", false, "JSON output")
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsAddCmd)
	tagsCmd.AddCommand(tagsDeleteCmd)
}
