package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasktracker/internal/domain"
)

// newListCommand creates the list subcommand
func newListCommand(root *RootCommand) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var tasks []domain.Task
			var err error

			if pendingOnly {
				tasks, err = root.service.GetPendingTasks(cmd.Context())
			} else {
				tasks, err = root.service.ListTasks(cmd.Context())
			}
			if err != nil {
				return root.errors.Handle("list tasks", err)
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found")
				return nil
			}

			for _, task := range tasks {
				fmt.Fprintln(cmd.OutOrStdout(), formatTask(task))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "show only pending tasks")

	return cmd
}

// formatTask renders one task as a single list line
func formatTask(task domain.Task) string {
	status := " "
	if task.Completed {
		status = "x"
	}
	line := fmt.Sprintf("[%s] %s (P%d) %s", status, task.ID, task.Priority, task.Title)
	if task.Description != "" {
		line += " - " + task.Description
	}
	return line
}
