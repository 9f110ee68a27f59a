package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalDays(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// A partial day rounds up, and the minimum charge is one day
	assert.Equal(t, 1, RentalDays(start, start))
	assert.Equal(t, 1, RentalDays(start, start.Add(3*time.Hour)))
	assert.Equal(t, 1, RentalDays(start, start.Add(24*time.Hour)))
	assert.Equal(t, 2, RentalDays(start, start.Add(25*time.Hour)))
	assert.Equal(t, 7, RentalDays(start, start.Add(7*24*time.Hour)))
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	require.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	first, err := GenerateRefreshToken()
	require.NoError(t, err)
	second, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.Len(t, first, 64) // 32 random bytes, hex-encoded
	assert.NotEqual(t, first, second)
}
