package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to SubChain",
		Long:  "Authenticate with the SubChain API and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if password == "" {
				fmt.Print("Password: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = string(bytePassword)
				fmt.Println()
			}

			client, err := createClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			resp, err := client.Login(context.Background(), &subchain.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if resp.User != nil {
				fmt.Printf("Successfully logged in as %s\n", resp.User.Email)
			} else {
				fmt.Println("Successfully logged in")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from SubChain",
		Long:  "Invalidate the session server-side and clear stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			if err := client.Logout(context.Background()); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}

// NewRegisterCommand creates the register command
func NewRegisterCommand() *cobra.Command {
	var (
		email    string
		username string
		password string
		company  string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a SubChain account",
		Long:  "Register a merchant account and open a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if email == "" {
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if username == "" {
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if password == "" {
				fmt.Print("Password: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = string(bytePassword)
				fmt.Println()
			}

			client, err := createClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			resp, err := client.Register(context.Background(), &subchain.RegisterRequest{
				Email:       email,
				Username:    username,
				Password:    password,
				CompanyName: company,
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			if resp.User != nil {
				fmt.Printf("Account created for %s\n", resp.User.Email)
			} else {
				fmt.Println("Account created")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&company, "company", "", "company name")

	return cmd
}
