package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/chirp/internal/client/auth"
	"github.com/iudanet/chirp/internal/client/session"
)

func newRegisterCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runRegister(ctx)
		}),
	}
}

func newLoginCommand(r *runner) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session locally",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runLogin(ctx, email)
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if empty)")
	return cmd
}

func newLogoutCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the local session and cached tweets",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runLogout(ctx)
		}),
	}
}

func newStatusCommand(r *runner) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runStatus(ctx, remote)
		}),
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Verify the session with the server")
	return cmd
}

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	var in auth.RegisterInput
	var err error

	if in.Email, err = c.io.ReadInput("Email: "); err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if in.Username, err = c.io.ReadInput("Username: "); err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if in.Name, err = c.io.ReadInput("Name: "); err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if in.Password, err = c.io.ReadPassword("Password: "); err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if confirm != in.Password {
		return fmt.Errorf("passwords do not match")
	}

	user, err := c.auth.Register(ctx, in)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Logged in as @%s (%s)\n", user.Username, user.Name)
	return nil
}

func (c *Cli) runLogin(ctx context.Context, email string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	var err error
	if email == "" {
		if email, err = c.io.ReadInput("Email: "); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	user, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as @%s (%s)\n", user.Username, user.Name)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Logged out")
	return nil
}

func (c *Cli) runStatus(ctx context.Context, remote bool) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	principal, err := c.auth.Principal(ctx)
	if errors.Is(err, session.ErrNotAuthenticated) {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'chirp login' to authenticate.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: @%s\n", principal.Username)
	if principal.Email != "" {
		c.io.Printf("Email:    %s\n", principal.Email)
	}

	if !remote {
		return nil
	}

	user, err := c.auth.FetchCurrentUser(ctx)
	if err != nil {
		return err
	}
	c.io.Printf("Server:   session valid for @%s\n", user.Username)
	return nil
}
