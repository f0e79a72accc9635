package service

import (
	"context"
	"errors"
	"time"

	"github.com/ClarkyAU/passforge/internal/model"
	"github.com/ClarkyAU/passforge/internal/repository"
	"github.com/ClarkyAU/passforge/internal/wordlist"
)

var (
	ErrInvalidName      = errors.New("wordlist name must be 1-64 characters of a-z, 0-9, '-' or '_'")
	ErrWordlistNotFound = errors.New("wordlist not found")
)

// maxNameLength bounds stored wordlist names.
const maxNameLength = 64

// WordlistService handles admin-managed named wordlists.
type WordlistService struct {
	repo *repository.WordlistRepository
}

// NewWordlistService creates a new WordlistService.
func NewWordlistService(repo *repository.WordlistRepository) *WordlistService {
	return &WordlistService{repo: repo}
}

// Save validates and stores a named wordlist, replacing any existing list
// with the same name. Words go through the strict cleaner, so a single bad
// word rejects the whole upload.
func (s *WordlistService) Save(ctx context.Context, name string, req model.SaveWordlistRequest) (model.WordlistResponse, error) {
	if !isValidName(name) {
		return model.WordlistResponse{}, ErrInvalidName
	}

	cleaned, err := wordlist.Clean(req.Words)
	if err != nil {
		return model.WordlistResponse{}, err
	}

	list := &model.Wordlist{
		Name:   name,
		Words:  cleaned,
		Source: req.Source,
	}
	if err := s.repo.Save(ctx, list); err != nil {
		return model.WordlistResponse{}, err
	}

	return model.WordlistResponse{
		Name:      name,
		Words:     cleaned,
		WordCount: len(cleaned),
		Source:    req.Source,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// Get retrieves a stored wordlist by name.
func (s *WordlistService) Get(ctx context.Context, name string) (model.WordlistResponse, error) {
	if !isValidName(name) {
		return model.WordlistResponse{}, ErrInvalidName
	}

	list, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return model.WordlistResponse{}, ErrWordlistNotFound
		}
		return model.WordlistResponse{}, err
	}

	return model.WordlistResponse{
		Name:      list.Name,
		Words:     list.Words,
		WordCount: len(list.Words),
		Source:    list.Source,
		UpdatedAt: list.UpdatedAt,
	}, nil
}

// List returns metadata for all stored wordlists.
func (s *WordlistService) List(ctx context.Context) ([]model.WordlistInfo, error) {
	lists, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []model.WordlistInfo{}
	}
	return lists, nil
}

// Delete removes a stored wordlist by name.
func (s *WordlistService) Delete(ctx context.Context, name string) error {
	if !isValidName(name) {
		return ErrInvalidName
	}

	err := s.repo.Delete(ctx, name)
	if errors.Is(err, repository.ErrWordlistNotFound) {
		return ErrWordlistNotFound
	}
	return err
}

// isValidName reports whether name is usable as a wordlist identifier:
// lowercase letters, digits, hyphen, underscore, at most 64 characters.
func isValidName(name string) bool {
	if name == "" || len(name) > maxNameLength {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
