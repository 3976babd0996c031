package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken returns 2*n hex characters from crypto/rand.
func GenerateRandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
