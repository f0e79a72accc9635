package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ClarkyAU/passforge/internal/crypto"
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash an admin password for the API server",
	Long: `Read a password without echoing it and print the argon2id hash in PHC
format, ready for the ADMIN_PASSWORD_HASH environment variable.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHash(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func runHash() error {
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	if len(password) == 0 {
		return errors.New("password must not be empty")
	}
	confirm, err := promptPassword("Confirm: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

// promptPassword reads a line from the terminal with echo disabled. The
// prompt goes to stderr so the hash alone lands on stdout.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(password), nil
}
