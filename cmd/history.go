package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
)

var (
	historySearch string
	historyOrder  string
	historyCached bool
	historyHTML   bool
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse your conversation history",
	Long: `Fetch the conversation history from the backend, pair queries with
their responses, and display them. Turns can be filtered with --search
(case-insensitive substring on the query) and ordered with --order.

A fetch failure degrades to a single error entry; the command never
crashes on malformed history. Each successful fetch is cached locally so
'wandersync export --all --cached' works offline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyOrder != internal.OrderNewest && historyOrder != internal.OrderOldest {
			return fmt.Errorf("invalid order %q (use newest or oldest)", historyOrder)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		_, userID, err := requireAuth(store)
		if err != nil {
			return err
		}

		turns, err := fetchTurns(cmd, userID)
		if err != nil {
			// Degrade to one synthetic error turn, as the reference UI does.
			internal.LogWarn("History fetch failed: %v", err)
			turns = []internal.Turn{internal.ErrorTurn("Error loading history")}
		}

		view := internal.Project(turns, historySearch, historyOrder)
		if len(view) == 0 {
			fmt.Println("No matching turns.")
			return nil
		}

		for _, turn := range view {
			if historyHTML {
				fmt.Println(internal.FormatHTML(turn.Query.Content))
				if turn.Response != nil {
					fmt.Println(internal.FormatHTML(turn.Response.Content))
				}
				continue
			}
			fmt.Println(internal.RenderTurn(turn))
			fmt.Println()
		}
		fmt.Printf("%d turn(s)\n", len(view))
		return nil
	},
}

// fetchTurns loads paired turns from the backend, or from the last cached
// snapshot when --cached is set. Fetches overwrite the snapshot; the two
// stores are never merged.
func fetchTurns(cmd *cobra.Command, userID string) ([]internal.Turn, error) {
	cfg := internal.LoadConfig()
	cache, err := internal.NewCacheManager(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	if historyCached {
		snap, err := cache.LoadSnapshot("history")
		if err != nil {
			return nil, fmt.Errorf("no cached history: %w", err)
		}
		return snap.Turns, nil
	}

	records, err := newClient().History(cmd.Context(), userID)
	if err != nil {
		return nil, err
	}

	result := internal.NewPairer().Pair(records)
	for _, orphan := range result.Orphaned {
		internal.LogWarn("Orphaned response at id %d dropped from display", orphan.ID)
	}

	snap := &internal.Snapshot{UserID: userID, FetchedAt: time.Now(), Turns: result.Turns}
	if err := cache.SaveSnapshot("history", snap); err != nil {
		internal.LogWarn("Failed to cache history: %v", err)
	}

	return result.Turns, nil
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historySearch, "search", "", "Filter turns by query substring")
	historyCmd.Flags().StringVar(&historyOrder, "order", internal.OrderNewest, "Sort order (newest, oldest)")
	historyCmd.Flags().BoolVar(&historyCached, "cached", false, "Use the last cached fetch instead of the backend")
	historyCmd.Flags().BoolVar(&historyHTML, "html", false, "Print formatted HTML instead of terminal rendering")
}
