package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator("ntf_")

	first := g.Generate()
	second := g.Generate()

	require.True(t, strings.HasPrefix(first, "ntf_"))
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(strings.TrimPrefix(first, "ntf_"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_NoPrefix(t *testing.T) {
	_, err := uuid.Parse(NewUUIDGenerator("").Generate())
	assert.NoError(t, err)
}
