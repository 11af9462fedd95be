package cmd

import (
	"github.com/spf13/cobra"
	"github.com/taskmarket/taskmarket-go/internal/api"
	"github.com/taskmarket/taskmarket-go/internal/models"
)

// NewPostCmd creates the post command
func NewPostCmd() *cobra.Command {
	var input api.CreateTaskInput
	var address string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDeps()

			input.Location = models.Location{Address: address}
			task, err := d.tasks.PostTask(cmd.Context(), input)
			if err != nil {
				return err
			}
			d.log.Success("posted task %s (%s); confirm it to open applications", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "task title (required)")
	cmd.Flags().StringVar(&input.Description, "description", "", "task description")
	cmd.Flags().StringVar(&input.Category, "category", "", "task category")
	cmd.Flags().StringVar(&address, "location", "", "where the task happens")
	cmd.Flags().Float64Var(&input.Offer, "offer", 0, "offered amount (required)")
	return cmd
}
