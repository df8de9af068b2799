package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
)

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new WanderSync account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := registerName
		email := registerEmail
		password := registerPassword
		if name == "" {
			name = promptLine("Name: ")
		}
		if email == "" {
			email = promptLine("Email: ")
		}
		if password == "" {
			password = promptLine("Password: ")
		}
		if name == "" || email == "" || password == "" {
			return fmt.Errorf("name, email and password are required")
		}

		client := newClient()
		resp, err := client.Register(cmd.Context(), name, email, password)
		if err != nil {
			internal.PrintError(fmt.Sprintf("Registration failed: %v", err))
			return err
		}
		if !resp.Success {
			internal.PrintError(resp.Message)
			return fmt.Errorf("registration rejected")
		}

		internal.PrintSuccess(resp.Message)
		fmt.Println("Now log in with: wandersync login")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
}
