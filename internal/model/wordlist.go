package model

import "time"

// Wordlist represents a stored named wordlist.
type Wordlist struct {
	ID        int64
	Name      string
	Words     []string
	Source    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WordlistInfo is the metadata-only view used in listings.
type WordlistInfo struct {
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	Source    string    `json:"source,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveWordlistRequest represents an upload of a named wordlist. Source is an
// optional free-form note about where the list came from.
type SaveWordlistRequest struct {
	Words  []string `json:"words"`
	Source string   `json:"source,omitempty"`
}

// WordlistResponse represents a single named wordlist download.
type WordlistResponse struct {
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	WordCount int       `json:"word_count"`
	Source    string    `json:"source,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
