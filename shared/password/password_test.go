package password_test

import (
	"dormy/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{"valid", "tenant-pass-123", nil},
		{"unicode", "pässwörd", nil},
		{"empty", "", password.ErrEmptyPassword},
		{"longer than bcrypt allows", strings.Repeat("a", 100), password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.HashWithCost(tt.password, bcrypt.MinCost)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2"))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.HashWithCost("landlord-secret", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{"match", "landlord-secret", hash, nil},
		{"mismatch", "wrong", hash, password.ErrInvalidPassword},
		{"empty password", "", hash, password.ErrInvalidPassword},
		{"empty hash", "landlord-secret", "", password.ErrInvalidPassword},
		{"corrupt hash", "landlord-secret", "not-a-hash", password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestDefaultCost(t *testing.T) {
	hash, err := password.Hash("x")

	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
}
