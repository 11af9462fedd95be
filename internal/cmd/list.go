package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/taskmarket/taskmarket-go/internal/cache"
	"github.com/taskmarket/taskmarket-go/internal/lifecycle"
	"github.com/taskmarket/taskmarket-go/internal/models"
	"github.com/taskmarket/taskmarket-go/internal/ui"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your posted, assigned, and applied tasks",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	d := newDeps()

	if err := d.tasks.RefreshUserTasks(cmd.Context()); err != nil {
		return err
	}

	bold := color.New(color.Bold)

	bold.Println("Posted")
	fmt.Print(ui.TaskTable(d.cache.Tasks(cache.PartitionPosted), d.tasks.ActionsFor))

	bold.Println("\nAssigned")
	fmt.Print(ui.TaskTable(d.cache.Tasks(cache.PartitionAssigned), d.tasks.ActionsFor))

	bold.Println("\nApplied")
	for _, app := range d.cache.Applications() {
		fmt.Printf("%-10s %-30s application: %s\n",
			app.Task.ID, app.Task.Title, string(app.Status))
	}

	for _, p := range []cache.Partition{cache.PartitionPosted, cache.PartitionAssigned} {
		for _, t := range d.cache.Tasks(p) {
			warnUnknownStatus(d.log, t.ID, t.Status)
		}
	}
	return nil
}

// warnUnknownStatus logs a data-integrity warning for unrecognized
// statuses; rendering continues with safe defaults.
func warnUnknownStatus(log *ui.Logger, taskID string, status models.TaskStatus) {
	if lifecycle.ProgressForStatus(status).Kind == lifecycle.ProgressUnknown {
		log.Warn("task %s has unrecognized status %q", taskID, status)
	}
}
