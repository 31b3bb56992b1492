package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUID when
// the system clock refuses to cooperate. Used as the run_id stamped on every
// log entry of a monitoring session.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
