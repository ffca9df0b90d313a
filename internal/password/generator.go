// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrLengthTooShort is returned when a generated password cannot hold one
// character of every required class.
var ErrLengthTooShort = errors.New("generated password length must be at least 4")

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	// symbols is the generator's symbol set; part of the guarantee that a
	// generated password passes the symbol check of Score.
	symbols = "!@#$%^&*"

	allChars = lowercase + uppercase + digits + symbols
)

// Generate produces a random password of exactly length characters,
// guaranteed to contain at least one lowercase letter, one uppercase letter,
// one digit and one symbol. The remaining characters are drawn uniformly
// from the full set and the result is shuffled so the guaranteed characters
// are not predictably positioned. Randomness comes from crypto/rand.
func Generate(length int) (string, error) {
	if length < 4 {
		return "", fmt.Errorf("%w: got %d", ErrLengthTooShort, length)
	}

	out := make([]byte, 0, length)
	for _, set := range []string{lowercase, uppercase, digits, symbols} {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := pick(allChars)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// pick returns one uniformly random character from set.
func pick(set string) (byte, error) {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return set[i.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("read random: %w", err)
		}
		b[i], b[j.Int64()] = b[j.Int64()], b[i]
	}
	return nil
}
