// Package wordlist loads and validates the word sources used by the
// passphrase generator. Lists can come from the embedded default, a local
// file, an HTTP URL, or the named-list store; all of them are normalized to
// lowercase a-z words before a generator ever sees them.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	_ "embed"
)

var (
	// ErrEmpty is returned when a source yields no usable words.
	ErrEmpty = errors.New("wordlist has no usable words")

	// ErrInvalidWord is returned by Clean when a submitted word is not
	// made of lowercase letters a-z.
	ErrInvalidWord = errors.New("word must contain only letters a-z")
)

//go:embed words.txt
var embeddedWords string

var (
	defaultOnce  sync.Once
	defaultWords []string
)

// Default returns the embedded fallback list used when no file, URL, or
// named list is configured.
func Default() []string {
	defaultOnce.Do(func() {
		words, err := Parse(strings.NewReader(embeddedWords))
		if err != nil {
			panic(fmt.Sprintf("wordlist: embedded list: %v", err))
		}
		defaultWords = words
	})
	return defaultWords
}

// Parse reads one word per line from r. It is deliberately lenient about the
// formats wordlists ship in: blank lines and # comments are skipped, and only
// the last whitespace-separated field of a line is kept, so numbered diceware
// files ("11111<tab>abacus") parse without preprocessing. Words are
// lowercased, tokens containing anything outside a-z are dropped, and
// duplicates collapse to the first occurrence. ErrEmpty if nothing survives.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		word := strings.ToLower(fields[len(fields)-1])
		if !isWord(word) || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// Clean validates an already-split slice of words, as submitted through the
// API. Unlike Parse it is strict: a word that is not lowercase a-z after
// trimming is an error, not a skip. Blank entries and duplicates are dropped.
func Clean(words []string) ([]string, error) {
	cleaned := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))

	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !isWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		cleaned = append(cleaned, w)
	}
	if len(cleaned) == 0 {
		return nil, ErrEmpty
	}
	return cleaned, nil
}

// LoadFile reads and parses a wordlist from disk.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wordlist: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
