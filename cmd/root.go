package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
)

var (
	verbose   bool
	serverURL string
	storePath string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wandersync",
	Short: "Chat with the WanderSync travel assistant from your terminal",
	Long: `A command-line client for the WanderSync travel chatbot.

Chat about destinations, browse and search your conversation history,
and export conversations as paginated PDF, Markdown or JSON documents.

Quick Start:
  wandersync login --email you@example.com   # Authenticate
  wandersync chat                            # Start chatting
  wandersync history --search rome           # Browse past turns
  wandersync export --format pdf             # Download the conversation`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; env vars still apply.
		_ = godotenv.Load()
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend URL (default from WANDERSYNC_SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Custom local state database path")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openStore opens the local state store used for credentials and the
// active session.
func openStore() (*internal.LocalStore, error) {
	store, err := internal.OpenLocalStore(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	return store, nil
}

// requireAuth loads the stored credentials. Absence means the user has to
// log in first; there is no retry.
func requireAuth(store *internal.LocalStore) (token, userID string, err error) {
	token, err = store.Get(internal.KeyToken)
	if err != nil {
		return "", "", err
	}
	if token == "" {
		return "", "", &internal.AuthError{Reason: "not logged in (run 'wandersync login')"}
	}
	userID, err = store.Get(internal.KeyUserID)
	if err != nil {
		return "", "", err
	}
	return token, userID, nil
}

func newClient() *internal.Client {
	return internal.NewClient(serverURL)
}
