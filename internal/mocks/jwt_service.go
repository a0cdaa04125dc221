package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/imovia/imovia-api/internal/service/auth"
)

// JWTService implements auth.JWTService for testing.
type JWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID, email string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Ensure JWTService implements auth.JWTService
var _ auth.JWTService = (*JWTService)(nil)

// GenerateToken implements the JWTService interface.
func (m *JWTService) GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID, email)
	}
	return "mock-token", nil
}

// ValidateToken implements the JWTService interface.
func (m *JWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}
