package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/taskmarket/taskmarket-go/internal/lifecycle"
	"github.com/taskmarket/taskmarket-go/internal/ui"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show task details and your available actions",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	d := newDeps()

	task, err := d.tasks.Task(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	bold.Printf("Task: %s\n", task.ID)
	fmt.Println(strings.Repeat("-", 50))

	fmt.Printf("Title:     %s\n", task.Title)
	fmt.Printf("Category:  %s\n", task.Category)
	fmt.Printf("Location:  %s\n", task.Location.Address)
	fmt.Printf("Offer:     $%.2f\n", task.Offer)
	fmt.Printf("Poster:    %s (%.1f stars)\n", task.TaskPoster.Username, task.TaskPoster.Rating)
	if task.TaskerAssigned != nil {
		fmt.Printf("Tasker:    %s\n", task.TaskerAssigned.Username)
	}
	fmt.Printf("Status:    %s\n", ui.StatusLabel(task.Status))
	fmt.Printf("Progress:  %s\n", ui.ProgressBar(lifecycle.ProgressForStatus(task.Status)))
	fmt.Printf("Actions:   %s\n", ui.ActionList(d.tasks.ActionsFor(task)))

	warnUnknownStatus(d.log, task.ID, task.Status)
	return nil
}
