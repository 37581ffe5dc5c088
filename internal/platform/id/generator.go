package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return v.String(), nil
}

// IsValid reports whether raw is a UUID in the canonical lowercase
// 8-4-4-4-12 form that NewID issues. URN, braced, undashed and uppercase
// spellings are rejected.
func IsValid(raw string) bool {
	v, err := uuid.Parse(raw)
	if err != nil {
		return false
	}

	return v.String() == raw
}
