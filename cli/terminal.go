package cli

import (
	"bufio"
	"fmt"

	"github.com/rpupo63/personal-blog/terminal"
	"github.com/spf13/cobra"
)

const clearScreen = "\033[H\033[2J"

func init() {
	RootCmd.AddCommand(terminalCmd)
}

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Open the interactive terminal (type 'help')",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		scanner := bufio.NewScanner(cmd.InOrStdin())
		var session terminal.Session

		fmt.Fprintln(out, headingColor.Sprint("Interactive Terminal"))
		for {
			fmt.Fprint(out, headingColor.Sprint(terminal.Prompt)+" ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}

			result := session.Submit(scanner.Text())
			switch result.Action {
			case terminal.ActionClear:
				fmt.Fprint(out, clearScreen)
				continue
			case terminal.ActionNavigateBlog:
				fmt.Fprintln(out, result.Response)
				if err := listPosts(cmd); err != nil {
					fmt.Fprintln(out, errorColor.Sprint("Failed to load blog posts. Please try again later."))
				}
				continue
			}

			if result.Response != "" {
				fmt.Fprintln(out, result.Response)
			}
		}
	},
}
