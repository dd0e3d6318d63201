package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/security"
	"greystone-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthFixture() (*MockUserRepo, service.AuthService) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)
	return userRepo, service.NewAuthService(userRepo, tokens)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "new@test.mn").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Bat", "New@Test.mn ", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "new@test.mn", user.Email)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		// Password stored hashed, never plaintext
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "taken@test.mn").Return(&domain.User{ID: 1, Email: "taken@test.mn"}, nil)

		_, _, _, err := svc.Signup(ctx, "Bat", "taken@test.mn", "secret123")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &domain.User{ID: 7, Email: "bat@test.mn", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "bat@test.mn").Return(user, nil)

		access, refresh, err := svc.Login(ctx, "bat@test.mn", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "bat@test.mn").Return(user, nil)

		_, _, err := svc.Login(ctx, "bat@test.mn", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "ghost@test.mn").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "ghost@test.mn", "secret123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 7, Email: "bat@test.mn"}

	t.Run("Refresh token issues a new pair", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		tokens := security.NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)
		refresh, err := tokens.GenerateRefreshToken(user.ID, user.Email)
		assert.NoError(t, err)

		userRepo.On("GetByID", ctx, user.ID).Return(user, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access token is not accepted for refresh", func(t *testing.T) {
		_, svc := newAuthFixture()
		tokens := security.NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)
		access, err := tokens.GenerateAccessToken(user.ID, user.Email)
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
