package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasktracker/internal/domain"
)

// newAddCommand creates the add subcommand
func newAddCommand(root *RootCommand) *cobra.Command {
	var description string
	var priority int

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := root.service.CreateTask(cmd.Context(), args[0], description, priority)
			if err != nil {
				return root.errors.Handle("add task", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s (priority %d)\n", task.ID, task.Title, task.Priority)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().IntVarP(&priority, "priority", "p", domain.MinPriority, "task priority (1-5, clamped)")

	return cmd
}
