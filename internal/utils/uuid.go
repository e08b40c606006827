package utils

import "github.com/google/uuid"

// UUIDGenerator issues session identifiers. It satisfies session.IDGenerator.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 when the v7
// source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
