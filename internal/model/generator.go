package model

// PasswordRequest represents a password generation request.
// Pointer fields distinguish missing (nil -> default) from explicit values,
// so {"digits": 0} turns digits off while an absent field keeps the default.
type PasswordRequest struct {
	Length           int    `json:"length"`
	Lowercase        *bool  `json:"lowercase"`
	Uppercase        *bool  `json:"uppercase"`
	Digits           *int   `json:"digits"`
	Symbols          *int   `json:"symbols"`
	SymbolSet        string `json:"symbol_set"`
	ExcludeAmbiguous bool   `json:"exclude_ambiguous"`
}

// PasswordResponse represents a password generation response.
type PasswordResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// PassphraseRequest represents a passphrase generation request. Separator is
// a pointer so an explicit empty separator survives decoding instead of
// falling back to the default hyphen.
type PassphraseRequest struct {
	Words      int     `json:"words"`
	Separator  *string `json:"separator"`
	Capitalize *bool   `json:"capitalize"`
	Digits     *int    `json:"digits"`
	Symbols    *int    `json:"symbols"`
	Wordlist   string  `json:"wordlist"` // named list; empty means the configured default
}

// PassphraseResponse represents a passphrase generation response.
type PassphraseResponse struct {
	Passphrase string `json:"passphrase"`
	Words      int    `json:"words"`
}
