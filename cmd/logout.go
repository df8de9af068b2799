package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(internal.KeyToken); err != nil {
			return err
		}
		if err := store.Delete(internal.KeyUserID); err != nil {
			return err
		}

		internal.PrintSuccess("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
