package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// IDGenerator produces fresh entity identifiers
type IDGenerator func() string

// NewEntityID creates a new random identifier for a user or post
func NewEntityID() string {
	return uuid.New().String()
}

// ParseEntityID checks that id looks like an identifier issued by NewEntityID
func ParseEntityID(id string) (string, error) {
	if id == "" {
		return "", errors.New("entity ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.New("entity ID must be a valid UUID")
	}
	return id, nil
}
