package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDoneCommand creates the done subcommand
func newDoneCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if root.service.CompleteTask(cmd.Context(), id) {
				fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", id)
				return nil
			}

			// The boolean contract conflates "not found" with "save
			// failed"; the message stays equally vague.
			fmt.Fprintf(cmd.OutOrStdout(), "Could not complete %s\n", id)
			return nil
		},
	}
}
