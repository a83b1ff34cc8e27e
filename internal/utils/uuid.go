package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque identifiers for newly created records.
// UUIDv7 is preferred for its creation-time ordering; v4 is the fallback
// when the system entropy source misbehaves.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
