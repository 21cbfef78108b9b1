package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *Cli) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [token|username]",
		Short: "Log in with an API token or as a known user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) == 1 {
				value = args[0]
			}
			return c.runLogin(cmd.Context(), value)
		},
	}
}

func (c *Cli) runLogin(ctx context.Context, value string) error {
	c.io.Println("=== Login ===")

	if value == "" {
		var err error
		value, err = c.io.ReadPassword("Token or username: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}

	username, err := c.login(ctx, value)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("✓ Logged in as %s\n", username)
	return nil
}

// login authenticates and remembers the user for the next run.
func (c *Cli) login(ctx context.Context, tokenOrUsername string) (string, error) {
	s, err := c.manager.Login(ctx, tokenOrUsername)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	c.rememberUser(s.Username())
	return s.Username(), nil
}

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the active session (known users stay on this machine)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.manager.Logout(cmd.Context())
			c.rememberUser("")
			c.io.Println("✓ Logged out")
			return nil
		},
	}
}

func (c *Cli) authURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auth-url",
		Short: "Print the platform login page for the browser flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, state := c.manager.AuthURL()
			c.io.Println(u)
			c.io.Printf("State: %s\n", state)
			return nil
		},
	}
}
