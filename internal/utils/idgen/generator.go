// Package idgen generates public identifiers for persisted entities.
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// GenerateSecureID returns an identifier of the form "<prefix>_<hex>", where
// the hex part is length characters drawn from crypto/rand.
func GenerateSecureID(prefix string, length int) (string, error) {
	if prefix == "" {
		return "", errors.New("prefix must not be empty")
	}
	if length <= 0 {
		return "", errors.New("length must be positive")
	}

	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(buf)[:length]), nil
}
