package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestRandIndexBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n, err := randIndex(7)
		if err != nil {
			t.Fatalf("randIndex() unexpected error: %v", err)
		}
		if n < 0 || n >= 7 {
			t.Fatalf("randIndex() = %d, want value in [0, 7)", n)
		}
	}
}

func TestRandIndexCoversPool(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n, err := randIndex(4)
		if err != nil {
			t.Fatalf("randIndex() unexpected error: %v", err)
		}
		seen[n] = true
	}

	for v := 0; v < 4; v++ {
		if !seen[v] {
			t.Errorf("randIndex() never produced %d across 500 draws", v)
		}
	}
}

func TestRandIndexInvalidPoolSize(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "zero", size: 0},
		{name: "negative", size: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := randIndex(tt.size)
			if !errors.Is(err, ErrInvalidPoolSize) {
				t.Errorf("randIndex(%d) error = %v, want ErrInvalidPoolSize", tt.size, err)
			}
		})
	}
}

func TestRandCharStaysInCharset(t *testing.T) {
	const charset = "abc123"

	for i := 0; i < 200; i++ {
		ch, err := randChar(charset)
		if err != nil {
			t.Fatalf("randChar() unexpected error: %v", err)
		}
		if strings.IndexByte(charset, ch) < 0 {
			t.Fatalf("randChar() = %q, not in charset %q", ch, charset)
		}
	}
}

func TestShufflePreservesElements(t *testing.T) {
	data := []byte("abcdefghij")
	original := string(data)

	if err := shuffle(data); err != nil {
		t.Fatalf("shuffle() unexpected error: %v", err)
	}

	if len(data) != len(original) {
		t.Fatalf("shuffle() changed length: got %d, want %d", len(data), len(original))
	}
	for i := 0; i < len(original); i++ {
		if strings.Count(string(data), string(original[i])) != strings.Count(original, string(original[i])) {
			t.Fatalf("shuffle() changed element multiset: got %q from %q", data, original)
		}
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	original := "abcdefghijklmnopqrst"

	// One shuffled copy matching the original order has probability 1/20!,
	// so five identical results means the shuffle is broken.
	for attempt := 0; attempt < 5; attempt++ {
		data := []byte(original)
		if err := shuffle(data); err != nil {
			t.Fatalf("shuffle() unexpected error: %v", err)
		}
		if string(data) != original {
			return
		}
	}
	t.Error("shuffle() left a 20-element slice unchanged five times in a row")
}

func TestShuffleSmallSlices(t *testing.T) {
	if err := shuffle([]byte{}); err != nil {
		t.Errorf("shuffle() on empty slice: %v", err)
	}

	single := []byte{'x'}
	if err := shuffle(single); err != nil {
		t.Errorf("shuffle() on single-element slice: %v", err)
	}
	if single[0] != 'x' {
		t.Errorf("shuffle() changed single-element slice: %q", single)
	}
}

func TestShuffleInts(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5}
	if err := shuffle(data); err != nil {
		t.Fatalf("shuffle() unexpected error: %v", err)
	}

	seen := make(map[int]bool)
	for _, v := range data {
		seen[v] = true
	}
	for v := 0; v < 6; v++ {
		if !seen[v] {
			t.Fatalf("shuffle() lost element %d: %v", v, data)
		}
	}
}

func TestCoinProducesBothSides(t *testing.T) {
	var heads, tails bool

	for i := 0; i < 200; i++ {
		c, err := coin()
		if err != nil {
			t.Fatalf("coin() unexpected error: %v", err)
		}
		if c {
			heads = true
		} else {
			tails = true
		}
		if heads && tails {
			return
		}
	}
	t.Error("coin() never produced both sides in 200 flips")
}
