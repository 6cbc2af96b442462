package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("changeme")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme", hash)

	assert.True(t, CheckPassword(hash, "changeme"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("5", "planet_id")
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)

	_, err = ParseID("abc", "planet_id")
	assert.Error(t, err)
	_, err = ParseID("0", "planet_id")
	assert.Error(t, err)
	_, err = ParseID("-3", "planet_id")
	assert.Error(t, err)
}
