package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <chat-id>",
	Short: "Delete one conversation from the server",
	Long: `Delete a server-side conversation by chat id.

On failure the backend's error text is shown and local state is left
unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		_, userID, err := requireAuth(store)
		if err != nil {
			return err
		}

		chatID := args[0]
		if err := newClient().DeleteChat(cmd.Context(), userID, chatID); err != nil {
			internal.PrintError(fmt.Sprintf("Delete failed: %v", err))
			return err
		}

		internal.PrintSuccess("Deleted conversation " + chatID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
