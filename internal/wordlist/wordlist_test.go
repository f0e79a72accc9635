package wordlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "plain words",
			input: "apple\nriver\nstone\n",
			want:  []string{"apple", "river", "stone"},
		},
		{
			name:  "mixed case is lowercased",
			input: "Apple\nRIVER\nStOnE\n",
			want:  []string{"apple", "river", "stone"},
		},
		{
			name:  "numbered diceware rows",
			input: "11111\tabacus\n11112\tabdomen\n11113\tabide\n",
			want:  []string{"abacus", "abdomen", "abide"},
		},
		{
			name:  "comments and blank lines skipped",
			input: "# diceware short list\n\napple\n\n# more below\nriver\n",
			want:  []string{"apple", "river"},
		},
		{
			name:  "tokens with digits or punctuation dropped",
			input: "apple\nr1ver\nsto-ne\ncloud\n",
			want:  []string{"apple", "cloud"},
		},
		{
			name:  "duplicates collapse to first occurrence",
			input: "apple\nriver\napple\nApple\n",
			want:  []string{"apple", "river"},
		},
		{
			name:  "no trailing newline",
			input: "apple\nriver",
			want:  []string{"apple", "river"},
		},
		{
			name:    "only junk",
			input:   "12345\n!!!\n# comment\n",
			wantErr: ErrEmpty,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Parse(strings.NewReader(tt.input))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(words, tt.want) {
				t.Errorf("Parse() = %v, want %v", words, tt.want)
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []string
		wantErr error
	}{
		{
			name:  "valid words",
			input: []string{"apple", "river", "stone"},
			want:  []string{"apple", "river", "stone"},
		},
		{
			name:  "trims and lowercases",
			input: []string{"  Apple ", "RIVER"},
			want:  []string{"apple", "river"},
		},
		{
			name:  "blanks and duplicates dropped",
			input: []string{"apple", "", "apple", "river"},
			want:  []string{"apple", "river"},
		},
		{
			name:    "word with digit rejected",
			input:   []string{"apple", "r1ver"},
			wantErr: ErrInvalidWord,
		},
		{
			name:    "word with hyphen rejected",
			input:   []string{"sto-ne"},
			wantErr: ErrInvalidWord,
		},
		{
			name:    "nothing usable",
			input:   []string{"", "  "},
			wantErr: ErrEmpty,
		},
		{
			name:    "empty slice",
			input:   nil,
			wantErr: ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Clean(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Clean() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Clean() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(words, tt.want) {
				t.Errorf("Clean() = %v, want %v", words, tt.want)
			}
		})
	}
}

func TestCleanReportsOffendingWord(t *testing.T) {
	_, err := Clean([]string{"apple", "not a word"})
	if !errors.Is(err, ErrInvalidWord) {
		t.Fatalf("Clean() error = %v, want ErrInvalidWord", err)
	}
	if !strings.Contains(err.Error(), "not a word") {
		t.Errorf("Clean() error %q should name the offending word", err)
	}
}

func TestDefault(t *testing.T) {
	words := Default()

	if len(words) != 256 {
		t.Fatalf("Default() returned %d words, want 256", len(words))
	}

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if !isWord(w) {
			t.Errorf("embedded word %q is not lowercase a-z", w)
		}
		if seen[w] {
			t.Errorf("embedded list contains duplicate %q", w)
		}
		seen[w] = true
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("apple\nriver\nstone\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	words, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"apple", "river", "stone"}) {
		t.Errorf("LoadFile() = %v, want the fixture words", words)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "no-such-file.txt"))
	if err == nil {
		t.Error("LoadFile() expected error for missing file")
	}
}

func TestFetchURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("alpha\nbeta\ngamma\n"))
	}))
	defer server.Close()

	words, err := FetchURL(context.Background(), server.Client(), server.URL)
	if err != nil {
		t.Fatalf("FetchURL() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"alpha", "beta", "gamma"}) {
		t.Errorf("FetchURL() = %v, want the served words", words)
	}
}

func TestFetchURLNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := FetchURL(context.Background(), server.Client(), server.URL)
	if err == nil {
		t.Error("FetchURL() expected error for 404 response")
	}
}

func TestFetchURLCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("alpha\n"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FetchURL(ctx, server.Client(), server.URL)
	if err == nil {
		t.Error("FetchURL() expected error for canceled context")
	}
}
