package service_test

import (
	"context"
	"testing"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/security"
	"arenahub-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	hash, err := security.HashPassword("hunter22")
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Email: "ace@x.gg", Username: "ace", PasswordHash: hash}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "ace@x.gg").Return(user, nil)

		access, refresh, got, err := svc.Login(ctx, "ace@x.gg", "hunter22")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, int32(1), got.ID)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
		assert.Equal(t, int32(1), claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "ace@x.gg").Return(user, nil)

		_, _, _, err := svc.Login(ctx, "ace@x.gg", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmailSameError", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "nobody@x.gg").Return(nil, domain.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "nobody@x.gg", "hunter22")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	userRepo := new(MockUserRepo)
	svc := service.NewAuthService(userRepo, tokens)

	t.Run("Success", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken(1, "ace@x.gg")
		assert.NoError(t, err)

		access, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken(1, "ace@x.gg")
		assert.NoError(t, err)

		_, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
