package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show common invocations",
		Run: func(cmd *cobra.Command, args []string) {
			color.Cyan("Book the lower tennis court for a specific date:")
			fmt.Fprintln(os.Stdout, `  skeddabook book --facility tennis_lower --date 2025-06-15 --start 12:00 --end 13:00`)
			fmt.Fprintln(os.Stdout)

			color.Cyan("Book as far ahead as the site allows (config default, usually 15 days):")
			fmt.Fprintln(os.Stdout, `  skeddabook book --facility tennis_lower --book-in-advance-days --start 18:00 --end 19:00`)
			fmt.Fprintln(os.Stdout)

			color.Cyan("Book three days out with a named credential profile:")
			fmt.Fprintln(os.Stdout, `  skeddabook book --facility squash --book-in-advance-days=3 --start 07:00 --end 08:00 --profile anna@example.com`)
			fmt.Fprintln(os.Stdout)

			color.Cyan("Watch the browser while debugging:")
			fmt.Fprintln(os.Stdout, `  skeddabook book --facility squash --date 2025-06-20 --start 07:00 --end 08:00 --headless=false -v`)
		},
	}
}
