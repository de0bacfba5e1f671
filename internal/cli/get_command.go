package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGetCommand creates the get subcommand
func newGetCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			task, err := root.service.GetTask(cmd.Context(), id)
			if err != nil {
				return root.errors.Handle("get task", err)
			}
			if task == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", id)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:          %s\n", task.ID)
			fmt.Fprintf(out, "Title:       %s\n", task.Title)
			fmt.Fprintf(out, "Description: %s\n", task.Description)
			fmt.Fprintf(out, "Priority:    %d\n", task.Priority)
			fmt.Fprintf(out, "Completed:   %t\n", task.Completed)
			return nil
		},
	}
}
