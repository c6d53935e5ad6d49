package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Secret1!", true},
		{"valid long", "Another$Passw0rd", true},
		{"too short", "Ab1!xyz", false},
		{"no upper", "secret1!", false},
		{"no digit", "Secretly!", false},
		{"no symbol", "Secret123", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret1!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret1!", hash)

	assert.True(t, CheckPasswordHash("Secret1!", hash))
	assert.False(t, CheckPasswordHash("Secret2!", hash))
}
