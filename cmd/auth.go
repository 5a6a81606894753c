package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/supabase"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to sync your data across devices",
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a sync account",
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and return to the local database",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
}

func syncClient(cfg config.Config) (*supabase.Client, error) {
	client := supabase.NewClient(config.GetSupabaseURL(cfg), config.GetSupabaseAnonKey(cfg))
	if client == nil {
		return nil, errors.New("sync is not configured; run `streamsaver setup` first")
	}
	return client, nil
}

func promptCredentials() (email, password string, err error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("  Email: ")
	email, err = reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	fmt.Print("  Password: ")
	password, err = reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}

	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", "", errors.New("email and password are required")
	}
	return email, password, nil
}

func runLogin(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := syncClient(cfg)
	if err != nil {
		return err
	}

	email, password, err := promptCredentials()
	if err != nil {
		return err
	}

	session, err := client.SignIn(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	cfg.Supabase.AccessToken = session.AccessToken
	cfg.Supabase.UserID = session.UserID
	cfg.Supabase.Email = session.Email
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("  Signed in as %s. Your data now syncs to the cloud.\n", session.Email)
	return nil
}

func runSignup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := syncClient(cfg)
	if err != nil {
		return err
	}

	email, password, err := promptCredentials()
	if err != nil {
		return err
	}

	if err := client.SignUp(context.Background(), email, password); err != nil {
		return fmt.Errorf("sign-up failed: %w", err)
	}

	fmt.Println("  Account created. Confirm your email if required, then run `streamsaver login`.")
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Supabase.AccessToken == "" {
		fmt.Println("  Not signed in.")
		return nil
	}

	if client, err := syncClient(cfg); err == nil {
		// Token revocation is best effort; the local session clears anyway.
		_ = client.SignOut(context.Background(), cfg.Supabase.AccessToken)
	}

	cfg.Supabase.AccessToken = ""
	cfg.Supabase.UserID = ""
	cfg.Supabase.Email = ""
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println("  Signed out. Back to the local database.")
	return nil
}
