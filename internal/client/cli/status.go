package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/studysync/internal/client/session"
)

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus(cmd.Context())
		},
	}
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	s := c.manager.Current(ctx)
	if !s.Authenticated() {
		c.io.Println("Status: Not logged in")
		if err := s.Err(); err != nil {
			c.io.Printf("Reason: %v\n", err)
		}
		c.io.Println()
		c.io.Println("Run 'studysync login' to authenticate.")
		return nil
	}

	user := s.User(ctx)
	c.io.Println("Status: Logged in")
	c.io.Printf("Username: %s\n", s.Username())
	if user.DisplayName != "" {
		c.io.Printf("Name: %s\n", user.DisplayName)
	}
	if user.CurrencyCode != "" {
		c.io.Printf("Currency: %s %s\n", user.CurrencyCode, user.CurrencySymbol())
	}
	c.io.Printf("Account: %s\n", user.AccountURL(c.cfg.Platform.ClientURL))

	if expiresAt, ok := session.TokenExpiry(s.Token()); ok {
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining := time.Until(expiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}
	return nil
}

func (c *Cli) usersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users known on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.manager.KnownUsers()
			if err != nil {
				return fmt.Errorf("failed to read known users: %w", err)
			}
			if len(users) == 0 {
				c.io.Println("No known users. Run 'studysync login' first.")
				return nil
			}
			active := c.cfg.Session.LastUser
			for _, u := range users {
				mark := " "
				if u.Username == active {
					mark = "*"
				}
				c.io.Printf("%s %s\t%s\n", mark, u.Username, u.DisplayName)
			}
			return nil
		},
	}
}
