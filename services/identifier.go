package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

const (
	identifierLength      = 25
	maxIdentifierAttempts = 10
)

var ErrIdentifierExhausted = errors.New("could not generate a unique identifier")

func randomIdentifier() string {
	bytes := make([]byte, (identifierLength+1)/2)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)[:identifierLength]
}

// generateIdentifier returns a fresh identifier that is not present in exclude,
// retrying on collision up to maxIdentifierAttempts times.
func generateIdentifier(exclude map[string]struct{}) (string, error) {
	for attempt := 0; attempt < maxIdentifierAttempts; attempt++ {
		id := randomIdentifier()
		if _, taken := exclude[id]; !taken {
			return id, nil
		}
	}
	return "", ErrIdentifierExhausted
}
