package main

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}
		sess, err := newClient(cfg).Login(cmd.Context(), args[0], password)
		if err != nil {
			// Surface the backend's message; the stored session is
			// untouched on failure.
			return err
		}
		if err := sessionStore(cfg).Save(sess); err != nil {
			return err
		}
		fmt.Printf("Hi, %s\n", sess.FirstName())
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <name> <email>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		password, err := promptPassword("Choose a password")
		if err != nil {
			return err
		}
		sess, err := newClient(cfg).Signup(cmd.Context(), args[0], args[1], password)
		if err != nil {
			return err
		}
		if err := sessionStore(cfg).Save(sess); err != nil {
			return err
		}
		fmt.Printf("Welcome, %s\n", sess.FirstName())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := sessionStore(cfg).Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sess, err := sessionStore(cfg).Load()
		if err != nil {
			return err
		}
		if sess == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s <%s> (id %d)\n", sess.Name, sess.Email, sess.Id)
		return nil
	},
}

func promptPassword(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}
	return prompt.Run()
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
