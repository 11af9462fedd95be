package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var avatar string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user, optionally updating the avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDeps()

			if avatar != "" {
				user, err := d.profile.SetAvatar(cmd.Context(), avatar)
				if err != nil {
					return err
				}
				d.log.Success("avatar updated")
				printUser(d.session.ViewerID(), user.Username, user.ProfilePicture)
				return nil
			}

			user := d.profile.User()
			printUser(d.session.ViewerID(), user.Username, user.ProfilePicture)
			return nil
		},
	}

	cmd.Flags().StringVar(&avatar, "avatar", "", "set a new profile picture URL")
	return cmd
}

func printUser(viewerID, username, picture string) {
	fmt.Printf("Viewer:  %s\n", viewerID)
	if username != "" {
		fmt.Printf("Name:    %s\n", username)
	}
	if picture != "" {
		fmt.Printf("Avatar:  %s\n", picture)
	}
}
