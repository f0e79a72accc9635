package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ClarkyAU/passforge/internal/crypto"
	"github.com/ClarkyAU/passforge/internal/model"
	"github.com/ClarkyAU/passforge/internal/wordlist"
)

func newTestPassphraseService() *PassphraseService {
	cache := wordlist.NewCache(func(ctx context.Context) ([]string, error) {
		return []string{"apple", "river", "stone", "cloud", "light"}, nil
	})
	return NewPassphraseService(cache, nil)
}

func TestGeneratePassphrase_Defaults(t *testing.T) {
	svc := newTestPassphraseService()

	resp, err := svc.GeneratePassphrase(context.Background(), model.PassphraseRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Words != 4 {
		t.Errorf("expected 4 words, got %d", resp.Words)
	}
	if strings.Count(resp.Passphrase, "-") != 3 {
		t.Errorf("expected 3 separators in %q", resp.Passphrase)
	}
}

func TestGeneratePassphrase_NamedListWithoutStore(t *testing.T) {
	svc := newTestPassphraseService()

	_, err := svc.GeneratePassphrase(context.Background(), model.PassphraseRequest{
		Wordlist: "eff-short",
	})
	if err != ErrStoreDisabled {
		t.Errorf("expected ErrStoreDisabled, got %v", err)
	}
}

func TestGeneratePassphrase_TooManyWords(t *testing.T) {
	svc := newTestPassphraseService()

	_, err := svc.GeneratePassphrase(context.Background(), model.PassphraseRequest{Words: 10})
	if !errors.Is(err, crypto.ErrWordCountExceedsList) {
		t.Errorf("expected ErrWordCountExceedsList, got %v", err)
	}
}

func TestGeneratePassphrase_SourceFailure(t *testing.T) {
	cache := wordlist.NewCache(func(ctx context.Context) ([]string, error) {
		return nil, errors.New("connection refused")
	})
	svc := NewPassphraseService(cache, nil)

	_, err := svc.GeneratePassphrase(context.Background(), model.PassphraseRequest{})
	if !errors.Is(err, ErrWordlistUnavailable) {
		t.Errorf("expected ErrWordlistUnavailable, got %v", err)
	}
}

func TestGeneratePassphrase_ExplicitEmptySeparator(t *testing.T) {
	svc := newTestPassphraseService()

	resp, err := svc.GeneratePassphrase(context.Background(), model.PassphraseRequest{
		Words:      2,
		Separator:  strPtr(""),
		Capitalize: boolPtr(false),
		Digits:     intPtr(0),
		Symbols:    intPtr(0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(resp.Passphrase, "-") {
		t.Errorf("explicit empty separator produced %q, should not fall back to hyphen", resp.Passphrase)
	}
	// All test words are five letters, so two of them run to ten characters.
	if len(resp.Passphrase) != 10 {
		t.Errorf("expected length 10, got %d in %q", len(resp.Passphrase), resp.Passphrase)
	}
}
