package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClarkyAU/passforge/internal/crypto"
	"github.com/ClarkyAU/passforge/internal/model"
	"github.com/ClarkyAU/passforge/internal/repository"
	"github.com/ClarkyAU/passforge/internal/wordlist"
)

var (
	// ErrStoreDisabled is returned when a request names a stored wordlist
	// but the server runs without a database.
	ErrStoreDisabled = errors.New("named wordlists are not available on this server")

	// ErrUnknownWordlist is returned when a request names a wordlist that
	// does not exist in the store.
	ErrUnknownWordlist = errors.New("unknown wordlist")

	// ErrWordlistUnavailable is returned when the default wordlist source
	// cannot be loaded.
	ErrWordlistUnavailable = errors.New("wordlist source unavailable")
)

// PassphraseService handles passphrase generation business logic. The cache
// supplies the default wordlist; the store resolves named lists and may be
// nil when the server runs without a database.
type PassphraseService struct {
	cache *wordlist.Cache
	store *repository.WordlistRepository
}

// NewPassphraseService creates a new PassphraseService.
func NewPassphraseService(cache *wordlist.Cache, store *repository.WordlistRepository) *PassphraseService {
	return &PassphraseService{cache: cache, store: store}
}

// GeneratePassphrase produces a passphrase from the request, filling in
// defaults for fields the client left out. Words come from the named stored
// list when the request gives one, otherwise from the cached default source.
func (s *PassphraseService) GeneratePassphrase(ctx context.Context, req model.PassphraseRequest) (model.PassphraseResponse, error) {
	defaults := crypto.DefaultPassphraseOptions()

	opts := crypto.PassphraseOptions{
		Words:      req.Words,
		Separator:  stringOrDefault(req.Separator, defaults.Separator),
		Capitalize: boolOrDefault(req.Capitalize, defaults.Capitalize),
		Digits:     intOrDefault(req.Digits, defaults.Digits),
		Symbols:    intOrDefault(req.Symbols, defaults.Symbols),
	}
	if opts.Words == 0 {
		opts.Words = defaults.Words
	}

	words, err := s.resolveWords(ctx, req.Wordlist)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	passphrase, err := crypto.GeneratePassphrase(opts, words)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	return model.PassphraseResponse{
		Passphrase: passphrase,
		Words:      opts.Words,
	}, nil
}

func (s *PassphraseService) resolveWords(ctx context.Context, name string) ([]string, error) {
	if name == "" {
		words, err := s.cache.Words(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWordlistUnavailable, err)
		}
		return words, nil
	}

	if s.store == nil {
		return nil, ErrStoreDisabled
	}

	list, err := s.store.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWordlist, name)
		}
		return nil, err
	}
	return list.Words, nil
}
