package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSetAndMatches(t *testing.T) {
	var p Password
	require.NoError(t, p.Set("hunter2hunter2"))
	require.NotEmpty(t, p.Hash)
	assert.NotEqual(t, "hunter2hunter2", p.Hash)

	ok, err := p.Matches("hunter2hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Matches("wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidAvailability(t *testing.T) {
	assert.True(t, ValidAvailability(AvailabilityAvailable))
	assert.True(t, ValidAvailability(AvailabilityOutOfStock))
	assert.True(t, ValidAvailability(AvailabilityPreOrder))
	assert.False(t, ValidAvailability("sold_out"))
	assert.False(t, ValidAvailability(""))
}
