package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var ErrInvalidPoolSize = errors.New("pool size must be positive")

// Randomness helpers shared by the password and passphrase generators.
// Everything here is stateless and safe for concurrent use.

// randIndex returns a uniform random index in [0, poolSize) using crypto/rand.
// rand.Int rejection-samples internally, so the result carries no modulo bias.
func randIndex(poolSize int) (int, error) {
	if poolSize <= 0 {
		return 0, ErrInvalidPoolSize
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(poolSize)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// randChar picks a random character from charset.
func randChar(charset string) (byte, error) {
	i, err := randIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle performs an in-place Fisher-Yates shuffle using crypto/rand.
func shuffle[T any](s []T) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}
	return nil
}

// coin flips a fair coin.
func coin() (bool, error) {
	i, err := randIndex(2)
	if err != nil {
		return false, err
	}
	return i == 0, nil
}
