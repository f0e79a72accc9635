// Package clip copies generated secrets to the system clipboard.
package clip

import (
	"time"

	"github.com/atotto/clipboard"
)

// Copy places secret on the system clipboard.
func Copy(secret string) error {
	return clipboard.WriteAll(secret)
}

// CopyAndClear places secret on the clipboard, waits d, then wipes the
// clipboard if it still holds the secret. It blocks for the full duration so
// one-shot commands stay alive until the wipe has happened.
func CopyAndClear(secret string, d time.Duration) error {
	if err := clipboard.WriteAll(secret); err != nil {
		return err
	}
	time.Sleep(d)

	current, err := clipboard.ReadAll()
	if err == nil && current != secret {
		// Another program replaced the contents in the meantime.
		return nil
	}
	return clipboard.WriteAll("")
}

// Clear wipes the clipboard.
func Clear() error {
	return clipboard.WriteAll("")
}
