package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		id := g.Generate()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestUUIDGenerator_FallsBackToRandom(t *testing.T) {
	g := &UUIDGenerator{newV7: func() (uuid.UUID, error) {
		return uuid.Nil, assert.AnError
	}}

	parsed, err := uuid.Parse(g.Generate())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
