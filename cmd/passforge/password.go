package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ClarkyAU/passforge/internal/crypto"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a random password",
	Long: `Generate a cryptographically secure random password. Digit and symbol
counts are exact; the rest of the length is filled with letters.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPassword(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)

	defaults := crypto.DefaultPasswordOptions()
	passwordCmd.Flags().IntP("length", "l", defaults.Length, "total password length")
	passwordCmd.Flags().Bool("lowercase", defaults.Lowercase, "include lowercase letters in the fill pool")
	passwordCmd.Flags().Bool("uppercase", defaults.Uppercase, "include uppercase letters in the fill pool")
	passwordCmd.Flags().IntP("digits", "d", defaults.Digits, "exact number of digits")
	passwordCmd.Flags().IntP("symbols", "s", defaults.Symbols, "exact number of symbols")
	passwordCmd.Flags().String("symbol-set", "", "custom symbol alphabet")
	passwordCmd.Flags().Bool("exclude-ambiguous", false, "drop easily confused characters (l1IO0)")
	addClipboardFlags(passwordCmd)
}

func runPassword(cmd *cobra.Command) error {
	opts := crypto.PasswordOptions{}
	opts.Length, _ = cmd.Flags().GetInt("length")
	opts.Lowercase, _ = cmd.Flags().GetBool("lowercase")
	opts.Uppercase, _ = cmd.Flags().GetBool("uppercase")
	opts.Digits, _ = cmd.Flags().GetInt("digits")
	opts.Symbols, _ = cmd.Flags().GetInt("symbols")
	opts.SymbolSet, _ = cmd.Flags().GetString("symbol-set")
	opts.ExcludeAmbiguous, _ = cmd.Flags().GetBool("exclude-ambiguous")

	password, err := crypto.GeneratePassword(opts)
	if err != nil {
		return err
	}
	return writeSecret(cmd, password)
}
