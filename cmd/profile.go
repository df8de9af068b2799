package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the authenticated user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		token, _, err := requireAuth(store)
		if err != nil {
			return err
		}

		resp, err := newClient().Profile(cmd.Context(), token)
		if err != nil {
			internal.PrintError(fmt.Sprintf("Failed to fetch profile: %v", err))
			return err
		}
		if !resp.Success {
			internal.PrintError(resp.Message)
			return fmt.Errorf("profile fetch rejected")
		}

		fmt.Printf("Name:  %s\n", resp.User.Name)
		fmt.Printf("Email: %s\n", resp.User.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
