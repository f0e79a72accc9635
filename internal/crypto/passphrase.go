package crypto

import (
	"errors"
	"strings"
)

// passphraseSymbols is the symbol alphabet for inserted extras, a smaller set
// than the password generator's default.
const passphraseSymbols = "!@#$%^&*"

var (
	ErrWordCountTooSmall    = errors.New("word count must be at least 1")
	ErrWordlistEmpty        = errors.New("wordlist is empty")
	ErrWordCountExceedsList = errors.New("word count exceeds wordlist size")
)

// PassphraseOptions configures the passphrase generator. Digits and Symbols
// are exact counts of extra characters mixed in alongside the words.
type PassphraseOptions struct {
	Words      int
	Separator  string
	Capitalize bool
	Digits     int
	Symbols    int
}

// DefaultPassphraseOptions returns sensible defaults: four capitalized words
// joined by hyphens with one digit and one symbol mixed in.
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		Words:      4,
		Separator:  "-",
		Capitalize: true,
		Digits:     1,
		Symbols:    1,
	}
}

// GeneratePassphrase builds a passphrase from words drawn without replacement
// from the given wordlist. The wordlist is a read-only borrow for the duration
// of the call and is never retained or modified.
//
// Each extra character attaches directly before or after a word (a fair coin
// decides which); extras beyond the word count are appended verbatim to the
// end of the result. The separator appears between words only.
func GeneratePassphrase(opts PassphraseOptions, wordlist []string) (string, error) {
	if opts.Words < 1 {
		return "", ErrWordCountTooSmall
	}
	if opts.Digits < 0 || opts.Symbols < 0 {
		return "", ErrNegativeCount
	}
	if len(wordlist) == 0 {
		return "", ErrWordlistEmpty
	}
	if opts.Words > len(wordlist) {
		return "", ErrWordCountExceedsList
	}

	chosen, err := sampleWords(wordlist, opts.Words)
	if err != nil {
		return "", err
	}

	if opts.Capitalize {
		for i, w := range chosen {
			chosen[i] = capitalize(w)
		}
	}

	extras, err := buildExtras(opts.Digits, opts.Symbols)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, word := range chosen {
		if i > 0 {
			b.WriteString(opts.Separator)
		}
		if len(extras) == 0 {
			b.WriteString(word)
			continue
		}
		extra := extras[0]
		extras = extras[1:]
		prepend, err := coin()
		if err != nil {
			return "", err
		}
		if prepend {
			b.WriteByte(extra)
			b.WriteString(word)
		} else {
			b.WriteString(word)
			b.WriteByte(extra)
		}
	}

	// More extras than words: the tail goes on the end, unseparated.
	b.Write(extras)

	return b.String(), nil
}

// sampleWords draws n distinct words uniformly at random without replacement.
func sampleWords(wordlist []string, n int) ([]string, error) {
	idx := make([]int, len(wordlist))
	for i := range idx {
		idx[i] = i
	}
	if err := shuffle(idx); err != nil {
		return nil, err
	}

	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = wordlist[idx[i]]
	}
	return words, nil
}

// buildExtras draws the requested digit and symbol characters and shuffles
// them together so the interleaving order is not predictable.
func buildExtras(digits, symbols int) ([]byte, error) {
	extras := make([]byte, 0, digits+symbols)
	for i := 0; i < digits; i++ {
		ch, err := randChar(digitChars)
		if err != nil {
			return nil, err
		}
		extras = append(extras, ch)
	}
	for i := 0; i < symbols; i++ {
		ch, err := randChar(passphraseSymbols)
		if err != nil {
			return nil, err
		}
		extras = append(extras, ch)
	}

	if err := shuffle(extras); err != nil {
		return nil, err
	}
	return extras, nil
}

// capitalize upper-cases the first letter of a word, leaving the rest
// unchanged. Wordlist entries are lowercase ASCII.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
