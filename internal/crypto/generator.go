package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// ambiguousChars are glyphs that read alike in common fonts: lowercase L,
	// digit one, uppercase I, uppercase O, digit zero.
	ambiguousChars = "l1IO0"

	MaxLength = 128
)

var (
	ErrNegativeLength   = errors.New("password length must not be negative")
	ErrNegativeCount    = errors.New("character counts must not be negative")
	ErrLengthTooLong    = errors.New("password length must be at most 128")
	ErrEmptyCategory    = errors.New("character category is empty")
	ErrLengthTooShort   = errors.New("password length is less than the required character count")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
	ErrFillPoolEmpty    = errors.New("no letter category selected to fill the remaining length")
)

// PasswordOptions configures the password generator. Lowercase and Uppercase
// guarantee at least one character from their category; Digits and Symbols are
// exact required counts. SymbolSet overrides the default symbol alphabet when
// non-empty. ExcludeAmbiguous drops the hard-to-read glyphs from the letter
// and digit categories; symbols are never filtered.
type PasswordOptions struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           int
	Symbols          int
	SymbolSet        string
	ExcludeAmbiguous bool
}

// DefaultPasswordOptions returns sensible defaults: 16 characters with both
// letter cases, two digits and two symbols.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    2,
		Symbols:   2,
	}
}

// GeneratePassword creates a cryptographically secure random password based on
// the given options.
//
// The result contains exactly opts.Digits digit characters and exactly
// opts.Symbols symbol characters; remaining positions are filled from the
// selected letter categories only. All validation happens before any
// randomness is drawn, and a final shuffle removes positional bias from the
// guaranteed characters.
func GeneratePassword(opts PasswordOptions) (string, error) {
	if opts.Length < 0 {
		return "", ErrNegativeLength
	}
	if opts.Digits < 0 || opts.Symbols < 0 {
		return "", ErrNegativeCount
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	lower, upper, digits, symbols := resolveCategories(opts)

	// Every requested category must resolve to at least one character.
	if opts.Digits > 0 && digits == "" {
		return "", fmt.Errorf("%w: digits", ErrEmptyCategory)
	}
	if opts.Symbols > 0 && symbols == "" {
		return "", fmt.Errorf("%w: symbols", ErrEmptyCategory)
	}
	if opts.Lowercase && lower == "" {
		return "", fmt.Errorf("%w: lowercase", ErrEmptyCategory)
	}
	if opts.Uppercase && upper == "" {
		return "", fmt.Errorf("%w: uppercase", ErrEmptyCategory)
	}

	required := opts.Digits + opts.Symbols
	if opts.Lowercase {
		required++
	}
	if opts.Uppercase {
		required++
	}
	if opts.Length < required {
		return "", ErrLengthTooShort
	}
	if required == 0 {
		return "", ErrNoCharacterTypes
	}

	// The fill pool holds the letter categories only, keeping the digit and
	// symbol counts exact.
	var pool string
	if opts.Lowercase {
		pool += lower
	}
	if opts.Uppercase {
		pool += upper
	}
	fill := opts.Length - required
	if fill > 0 && pool == "" {
		return "", ErrFillPoolEmpty
	}

	result := make([]byte, 0, opts.Length)

	for i := 0; i < opts.Digits; i++ {
		ch, err := randChar(digits)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}
	for i := 0; i < opts.Symbols; i++ {
		ch, err := randChar(symbols)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}
	if opts.Lowercase {
		ch, err := randChar(lower)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}
	if opts.Uppercase {
		ch, err := randChar(upper)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	for i := 0; i < fill; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// resolveCategories returns each category's character subset after the custom
// symbol override and ambiguity filtering are applied.
func resolveCategories(opts PasswordOptions) (lower, upper, digits, symbols string) {
	lower = lowercaseChars
	upper = uppercaseChars
	digits = digitChars

	symbols = symbolChars
	if opts.SymbolSet != "" {
		symbols = cleanSymbolSet(opts.SymbolSet)
	}

	if opts.ExcludeAmbiguous {
		lower = stripChars(lower, ambiguousChars)
		upper = stripChars(upper, ambiguousChars)
		digits = stripChars(digits, ambiguousChars)
	}

	return lower, upper, digits, symbols
}

// cleanSymbolSet normalizes a caller-supplied symbol set: whitespace and
// non-printable-ASCII input is dropped and duplicate characters are removed,
// preserving first-seen order.
func cleanSymbolSet(s string) string {
	var b strings.Builder
	var seen [128]bool
	for _, r := range s {
		if r <= ' ' || r > '~' {
			continue
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		b.WriteByte(byte(r))
	}
	return b.String()
}

// stripChars returns s without any of the characters in remove.
func stripChars(s, remove string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(remove, s[i]) < 0 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
