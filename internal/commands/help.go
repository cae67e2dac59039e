package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for studylog",
	Long:  `Display detailed help for all studylog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗
██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝
███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝
╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝
███████║   ██║   ╚██████╔╝██████╔╝   ██║
╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝

studylog - CLI Study Session Tracker

COMMANDS:

  add [description]       Log a study session
    -m, --minutes         Session length (1-600)
    -d, --date            Date: YYYY-MM-DD, today, yesterday
    -t, --tags            Comma-separated tags
    -n, --notes           Notes (max 200 chars)
    -i, --interactive     Open the interactive form

    Quick syntax:
      #tags         Comma-separated tags
      45min / 45m   Duration
      on:DATE       Session date

    Example:
      studylog add "Calculus revision #math,exam 45min on:today"

  ls                      List sessions
    -s, --search          Free-text search
    -t, --tags            Require tags (AND)
    -r, --range           all|today|7d|month|custom
    --from, --to          Custom range bounds
    --ui                  Interactive browser
    --json                JSON output

  search <query>          Search title, notes and tags

  edit <id>               Edit a session (interactive unless flags given)
  rm <id>                 Move a session to the recycle bin

  bin                     List recycle bin entries
  bin restore <id>        Restore a binned session
  bin rm <id>             Permanently delete a binned session
  bin empty               Empty the recycle bin

  tags                    List tags with usage counts
  tags add <name>         Create a tag
  tags rm <name>          Delete an unused tag

  dash                    Study dashboard (streaks, goal, calendar)
    --week N              Week offset (-1 = last week)
    --month YYYY-MM       Calendar month
    --no-ui               Plain text output

  export <file>           Export sessions as a JSON array
  import <file>           Import sessions from a JSON array

  settings                Show weekly goal and daily minimum
  settings goal <min>     Set the weekly goal
  settings minimum <min>  Set the daily minimum

  help                    Show this help
  version                 Show version information

Session ids may be abbreviated to any unique prefix.

`)
}
