package service

import (
	"context"
	"testing"
	"time"

	"showcase/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthService_RequiresSecret(t *testing.T) {
	svc, err := NewAuthService(config.AuthConfig{})

	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestAuthService_CreateAndValidate(t *testing.T) {
	svc, err := NewAuthService(config.AuthConfig{JWTSecret: "test-secret", Issuer: "showcase", Audience: "drinks"})
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc.CreateJWT(ctx, "barista-1", []string{"get:drinks-detail", "post:drinks"}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, "barista-1", claims.Subject)
	assert.True(t, claims.HasPermission("post:drinks"))
	assert.False(t, claims.HasPermission("delete:drinks"))
}

func TestAuthService_ValidateJWT_Rejects(t *testing.T) {
	ctx := context.Background()
	svc, err := NewAuthService(config.AuthConfig{JWTSecret: "test-secret"})
	require.NoError(t, err)

	expired, err := svc.CreateJWT(ctx, "barista-1", nil, -time.Minute)
	require.NoError(t, err)

	other, err := NewAuthService(config.AuthConfig{JWTSecret: "another-secret"})
	require.NoError(t, err)
	foreign, err := other.CreateJWT(ctx, "barista-1", nil, time.Hour)
	require.NoError(t, err)

	issuerless, err := svc.CreateJWT(ctx, "barista-1", nil, time.Hour)
	require.NoError(t, err)
	strict, err := NewAuthService(config.AuthConfig{JWTSecret: "test-secret", Issuer: "showcase"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   AuthService
		token string
	}{
		{name: "expired", svc: svc, token: expired},
		{name: "wrong secret", svc: svc, token: foreign},
		{name: "malformed", svc: svc, token: "not-a-jwt"},
		{name: "missing issuer", svc: strict, token: issuerless},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.ValidateJWT(ctx, tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidJWTToken)
		})
	}
}
