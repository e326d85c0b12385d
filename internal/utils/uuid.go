package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Short returns 8 random hex characters. The leading bytes of a v7 id are
// the timestamp, so the random v4 form is used here.
func (g *UUIDGenerator) Short() string {
	return uuid.NewString()[:8]
}
