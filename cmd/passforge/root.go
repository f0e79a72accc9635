package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ClarkyAU/passforge/internal/clip"
)

var rootCmd = &cobra.Command{
	Use:   "passforge",
	Short: "Generate strong passwords and passphrases",
	Long: `Passforge generates cryptographically secure random passwords and
word-based passphrases, entirely offline.`,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addClipboardFlags registers the clipboard flags shared by the generator
// commands.
func addClipboardFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("copy", "c", false, "copy the result to the clipboard instead of printing it")
	cmd.Flags().Duration("clear-after", 0, "with --copy, clear the clipboard after this duration")
}

// writeSecret prints the secret, or copies it to the clipboard when --copy is
// set. With --clear-after the command stays alive until the clipboard has
// been wiped.
func writeSecret(cmd *cobra.Command, secret string) error {
	copyToClipboard, _ := cmd.Flags().GetBool("copy")
	if !copyToClipboard {
		fmt.Println(secret)
		return nil
	}

	clearAfter, _ := cmd.Flags().GetDuration("clear-after")
	if clearAfter > 0 {
		fmt.Printf("Copied to clipboard, clearing in %s\n", clearAfter)
		return clip.CopyAndClear(secret, clearAfter)
	}

	if err := clip.Copy(secret); err != nil {
		return err
	}
	fmt.Println("Copied to clipboard")
	return nil
}
