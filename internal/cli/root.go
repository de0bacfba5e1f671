package cli

import (
	"context"

	"github.com/spf13/cobra"

	"tasktracker/internal/config"
	"tasktracker/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	service services.TaskService
	config  *config.Config
	errors  *ErrorHandler
}

// NewRootCommand creates the root cobra command and registers all
// subcommands
func NewRootCommand(service services.TaskService, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		service: service,
		config:  cfg,
		errors:  NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "tk",
		Short: "A command-line task tracker",
		Long: `Task Tracker (tk) is a command-line application for tracking tasks.

EXAMPLES:
  tk add "Buy milk" -d "2 litres" -p 2     # Add a task with description and priority
  tk list                                  # List every task
  tk list --pending                        # List only pending tasks
  tk done task_1                           # Mark a task as completed
  tk get task_1                            # Show a single task

CONFIGURATION:
  TK_STORAGE_BACKEND                       Storage backend, memory or sqlite (default: memory)
  TK_DB_DIR                                Database directory for sqlite (default: ~/.tk)
  TK_DB_FILENAME                           Database filename for sqlite (default: tk.db)
  TK_ID_SCHEME                             Task id scheme, sequential or random (default: sequential)
  TK_VALIDATION_TITLE_MAX                  Max title length (default: 255)
  TK_APP_TIMEOUT                           Application timeout (default: 60s)
  TK_DEBUG                                 Enable debug output when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.AddCommand(newAddCommand(root))
	root.cmd.AddCommand(newDoneCommand(root))
	root.cmd.AddCommand(newListCommand(root))
	root.cmd.AddCommand(newGetCommand(root))

	return root
}

// Execute runs the root command with the given arguments
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// Command exposes the underlying cobra command, used by tests to
// redirect output.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}
