package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/taskmarket/taskmarket-go/internal/cmd"
)

// Version is set by -ldflags during build
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "taskmarket",
		Short:   "Task marketplace client",
		Long:    "Post tasks, browse the feed, apply, and track work from the command line",
		Version: Version,
	}

	rootCmd.AddCommand(cmd.NewListCmd())
	rootCmd.AddCommand(cmd.NewBrowseCmd())
	rootCmd.AddCommand(cmd.NewShowCmd())
	rootCmd.AddCommand(cmd.NewPostCmd())
	rootCmd.AddCommand(cmd.NewApplyCmd())
	rootCmd.AddCommand(cmd.NewAcceptCmd())
	rootCmd.AddCommand(cmd.NewConfirmCmd())
	rootCmd.AddCommand(cmd.NewCompleteCmd())
	rootCmd.AddCommand(cmd.NewApproveCmd())
	rootCmd.AddCommand(cmd.NewCancelCmd())
	rootCmd.AddCommand(cmd.NewRateCmd())
	rootCmd.AddCommand(cmd.NewWhoamiCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
