package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your WanderSync account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		password := loginPassword
		if email == "" {
			email = promptLine("Email: ")
		}
		if password == "" {
			password = promptLine("Password: ")
		}
		if email == "" || password == "" {
			return fmt.Errorf("email and password are required")
		}

		client := newClient()
		resp, err := client.Login(cmd.Context(), email, password)
		if err != nil {
			internal.PrintError(fmt.Sprintf("Login failed: %v", err))
			return err
		}
		if !resp.Success {
			internal.PrintError(resp.Message)
			return fmt.Errorf("login rejected")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Set(internal.KeyToken, resp.JWT); err != nil {
			return err
		}
		if err := store.Set(internal.KeyUserID, resp.UserID); err != nil {
			return err
		}

		internal.PrintSuccess(resp.Message)
		return nil
	},
}

func promptLine(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line)
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
