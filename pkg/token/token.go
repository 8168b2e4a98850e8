// Package token generates the opaque API keys handed to clinicians.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyBytes is the entropy of a generated key. 32 random bytes encode to a
// 64-character hex string, far beyond guessable.
const KeyBytes = 32

// Generator produces opaque credential strings. It is an interface so tests
// can substitute deterministic keys.
type Generator interface {
	Generate() (string, error)
}

type generator struct{}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() Generator {
	return generator{}
}

func (generator) Generate() (string, error) {
	buf := make([]byte, KeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
