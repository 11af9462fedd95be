package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/taskmarket/taskmarket-go/internal/models"
)

// NewApplyCmd creates the apply command
func NewApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <task-id>",
		Short: "Apply to perform a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDeps()
			app, err := d.tasks.Apply(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			d.log.Success("applied to %s; application %s is %s", app.Task.Title, app.ID, app.Status)
			return nil
		},
	}
}

// NewAcceptCmd creates the accept command
func NewAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <application-id>",
		Short: "Accept an application to one of your tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDeps()
			task, err := d.tasks.Accept(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if task.TaskerAssigned != nil {
				d.log.Success("%s assigned to %s", task.Title, task.TaskerAssigned.Username)
			}
			return nil
		},
	}
}

// NewConfirmCmd creates the confirm command
func NewConfirmCmd() *cobra.Command {
	return taskMutationCmd("confirm", "Publish a created task onto the feed",
		func(ctx context.Context, d *deps, id string) (models.Task, error) {
			return d.tasks.Confirm(ctx, id)
		})
}

// NewCompleteCmd creates the complete command
func NewCompleteCmd() *cobra.Command {
	return taskMutationCmd("complete", "Mark your assigned task as done",
		func(ctx context.Context, d *deps, id string) (models.Task, error) {
			return d.tasks.Complete(ctx, id)
		})
}

// NewApproveCmd creates the approve command
func NewApproveCmd() *cobra.Command {
	return taskMutationCmd("approve", "Approve delivered work on your task",
		func(ctx context.Context, d *deps, id string) (models.Task, error) {
			return d.tasks.Approve(ctx, id)
		})
}

// NewCancelCmd creates the cancel command
func NewCancelCmd() *cobra.Command {
	return taskMutationCmd("cancel", "Cancel one of your tasks",
		func(ctx context.Context, d *deps, id string) (models.Task, error) {
			return d.tasks.Cancel(ctx, id)
		})
}

// NewRateCmd creates the rate command
func NewRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <task-id> <rating>",
		Short: "Rate the tasker on a completed task (0-5, half steps)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			d := newDeps()
			task, err := d.tasks.Rate(cmd.Context(), args[0], rating)
			if err != nil {
				return err
			}
			d.log.Success("rated %s", task.Title)
			return nil
		},
	}
}

func taskMutationCmd(use, short string, run func(context.Context, *deps, string) (models.Task, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDeps()
			task, err := run(cmd.Context(), d, args[0])
			if err != nil {
				return err
			}
			d.log.Success("%s is now %s", task.Title, task.Status)
			return nil
		},
	}
}
