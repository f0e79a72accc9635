package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ClarkyAU/passforge/internal/crypto"
	"github.com/ClarkyAU/passforge/internal/wordlist"
)

var passphraseCmd = &cobra.Command{
	Use:   "passphrase",
	Short: "Generate a word-based passphrase",
	Long: `Generate a passphrase from randomly chosen words. Words come from the
built-in list unless --wordlist points at a file with one word per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPassphrase(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(passphraseCmd)

	defaults := crypto.DefaultPassphraseOptions()
	passphraseCmd.Flags().IntP("words", "w", defaults.Words, "number of words")
	passphraseCmd.Flags().String("separator", defaults.Separator, "string placed between words")
	passphraseCmd.Flags().Bool("capitalize", defaults.Capitalize, "capitalize the first letter of each word")
	passphraseCmd.Flags().IntP("digits", "d", defaults.Digits, "number of random digits attached to words")
	passphraseCmd.Flags().IntP("symbols", "s", defaults.Symbols, "number of random symbols attached to words")
	passphraseCmd.Flags().String("wordlist", "", "path to a wordlist file")
	addClipboardFlags(passphraseCmd)
}

func runPassphrase(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("wordlist")
	words := wordlist.Default()
	if path != "" {
		var err error
		words, err = wordlist.LoadFile(path)
		if err != nil {
			return err
		}
	}

	opts := crypto.PassphraseOptions{}
	opts.Words, _ = cmd.Flags().GetInt("words")
	opts.Separator, _ = cmd.Flags().GetString("separator")
	opts.Capitalize, _ = cmd.Flags().GetBool("capitalize")
	opts.Digits, _ = cmd.Flags().GetInt("digits")
	opts.Symbols, _ = cmd.Flags().GetInt("symbols")

	passphrase, err := crypto.GeneratePassphrase(opts, words)
	if err != nil {
		return err
	}
	return writeSecret(cmd, passphrase)
}
