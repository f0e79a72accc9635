package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxFetchBytes caps how much of a remote wordlist is read. The largest
// common diceware file is under 1 MB.
const maxFetchBytes = 4 << 20

// FetchURL downloads and parses a wordlist over HTTP. A nil client falls
// back to http.DefaultClient.
func FetchURL(ctx context.Context, client *http.Client, url string) ([]string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building wordlist request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching wordlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching wordlist: unexpected status %d from %s", resp.StatusCode, url)
	}

	return Parse(io.LimitReader(resp.Body, maxFetchBytes))
}
