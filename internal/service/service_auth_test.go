package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/rkhasanov/photoshare/internal/config"
	"github.com/rkhasanov/photoshare/internal/logger"
	"github.com/rkhasanov/photoshare/internal/mock"
	"github.com/rkhasanov/photoshare/internal/store"
	"github.com/rkhasanov/photoshare/models"
)

// newTestAuthSvc is a helper creating an authService with a mocked repository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, config.App{BcryptCost: bcrypt.MinCost}, logger.Nop())
	return svc, repo
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Ann", u.Name)
			assert.Equal(t, "a@x.com", u.Email)
			// the plaintext must never reach the repository
			assert.NotEqual(t, "pw123", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw123")))

			u.UserID = 1
			return u, nil
		},
	)

	user, err := svc.Register(ctx, "Ann", "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name, userName, email, password string
	}{
		{"no name", "", "a@x.com", "pw"},
		{"no email", "Ann", "", "pw"},
		{"no password", "Ann", "a@x.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, "Ann", "a@x.com", "pw123")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func hashedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{UserID: 7, Name: "Ann", Email: "a@x.com", PasswordHash: string(hash)}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(hashedUser(t, "pw123"), nil)

	user, err := svc.Login(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(hashedUser(t, "pw123"), nil)

	_, err := svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "ghost@x.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, "ghost@x.com", "pw123")
	// distinguishable internally from a wrong password
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "pw123")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Login(ctx, "a@x.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}
