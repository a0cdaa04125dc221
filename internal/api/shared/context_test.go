package shared

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get round-trip", func(t *testing.T) {
		t.Parallel()

		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)

		require.NotEmpty(t, traceID)
		assert.Len(t, traceID, TraceIDLength*2) // hex-encoded
	})

	t.Run("missing trace ID yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("trace IDs are unique", func(t *testing.T) {
		t.Parallel()

		a := GetTraceID(SetTraceID(context.Background()))
		b := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, a, b)
	})
}

func TestPrincipal(t *testing.T) {
	t.Parallel()

	principal := Principal{
		UserID:    uuid.New(),
		Email:     "user@example.com",
		IssuedAt:  time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	ctx := WithPrincipal(context.Background(), principal)
	got, ok := PrincipalFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, principal, got)

	_, ok = PrincipalFromContext(context.Background())
	assert.False(t, ok)
}
