package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search past responses on the server",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if _, _, err := requireAuth(store); err != nil {
			return err
		}

		query := strings.Join(args, " ")
		resp, err := newClient().Search(cmd.Context(), query)
		if err != nil {
			internal.PrintError(fmt.Sprintf("Search failed: %v", err))
			return err
		}

		if len(resp.Results) == 0 {
			fmt.Println("No results.")
			return nil
		}
		for _, result := range resp.Results {
			fmt.Println(internal.FormatLinks(result.Response))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
