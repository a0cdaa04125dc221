package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("Ana@Example.com", "correct-horse-battery")
		require.NoError(t, err)

		assert.Equal(t, "ana@example.com", user.Email)
		assert.NotZero(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("ana@example.com", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects overlong password", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("ana@example.com", strings.Repeat("x", 73))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{"no-at-sign", "@nolocal.com", "trailing@", "bad@domain"} {
			_, err := NewUser(email, "correct-horse-battery")
			assert.Error(t, err, "email %q should be rejected", email)
		}
	})
}
