package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeGenerator_Unique(t *testing.T) {
	gen, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		key := gen.GenerateKey()
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %s", key)
		seen[key] = struct{}{}
	}

	assert.Positive(t, gen.GenerateID())
}

func TestSnowflakeGenerator_RejectsBadNode(t *testing.T) {
	_, err := NewSnowflakeGenerator(5000)
	assert.Error(t, err)
}
