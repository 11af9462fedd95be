package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taskmarket/taskmarket-go/internal/api"
	"github.com/taskmarket/taskmarket-go/internal/ui"
)

// NewBrowseCmd creates the browse command
func NewBrowseCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the public feed of tasks open for applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDeps()

			tasks, err := d.tasks.BrowseOpenTasks(cmd.Context(), api.ListOptions{Page: page, PageSize: limit})
			if err != nil {
				return err
			}
			fmt.Print(ui.TaskTable(tasks, d.tasks.ActionsFor))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "tasks per page")
	return cmd
}
