package service

import (
	"github.com/ClarkyAU/passforge/internal/crypto"
	"github.com/ClarkyAU/passforge/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// GeneratePassword produces a password from the request, filling in defaults
// for fields the client left out. A zero length means "use the default";
// explicit zero counts turn a category off.
func (s *GeneratorService) GeneratePassword(req model.PasswordRequest) (model.PasswordResponse, error) {
	defaults := crypto.DefaultPasswordOptions()

	opts := crypto.PasswordOptions{
		Length:           req.Length,
		Lowercase:        boolOrDefault(req.Lowercase, defaults.Lowercase),
		Uppercase:        boolOrDefault(req.Uppercase, defaults.Uppercase),
		Digits:           intOrDefault(req.Digits, defaults.Digits),
		Symbols:          intOrDefault(req.Symbols, defaults.Symbols),
		SymbolSet:        req.SymbolSet,
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	}
	if opts.Length == 0 {
		opts.Length = defaults.Length
	}

	password, err := crypto.GeneratePassword(opts)
	if err != nil {
		return model.PasswordResponse{}, err
	}

	return model.PasswordResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// stringOrDefault returns the dereferenced pointer value, or the fallback if nil.
func stringOrDefault(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
