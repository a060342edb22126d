package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/phplist/go-client/pkg/listclient"
	"github.com/phplist/go-client/pkg/phplist"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		server    string
		loginName string
		password  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to phpList",
		Long:  "Authenticate with a phpList server and store the session key",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get server URL
			if server == "" {
				server = viper.GetString("server")
			}

			if server == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Server URL: ")
				server, _ = reader.ReadString('\n')
				server = strings.TrimSpace(server)
			}

			if server == "" {
				return ErrServerRequired
			}

			if loginName == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Login name: ")
				loginName, _ = reader.ReadString('\n')
				loginName = strings.TrimSpace(loginName)
			}

			if loginName == "" {
				return ErrLoginNameRequired
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

			client, err := listclient.Connect(context.Background(), &phplist.Config{
				BaseURL:   server,
				LoginName: loginName,
				Password:  password,
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			// Persist server and session for subsequent commands
			viper.Set("server", server)
			viper.Set("session", client.SessionKey())

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Logged in to %s as %s\n", server, loginName)

			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "phpList server base URL")
	cmd.Flags().StringVarP(&loginName, "login-name", "l", "", "administrator login name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "administrator password (prompted if omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from phpList",
		Long:  "Invalidate the stored session on the server and clear it locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err == nil {
				// Best effort: an expired session still gets cleared locally.
				if err := client.Logout(context.Background()); err != nil && viper.GetBool("verbose") {
					fmt.Fprintf(os.Stderr, "Warning: server-side logout failed: %v\n", err)
				}
			}

			viper.Set("session", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}

// saveConfig writes the active viper settings back to the config file,
// creating ~/.phplist/config.yml when none is in use yet.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".phplist")

		err = os.MkdirAll(configDir, 0700)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
