package usecase

import (
	"context"
	"testing"

	"hunarhub/internal/dto/request"
	"hunarhub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{
			CookieName:  "session_token",
			ExpiryHours: 24,
		},
		Upload: utils.UploadConfig{
			MaxImages: 5,
		},
	}
}

func strPtr(s string) *string { return &s }

func TestRegisterCustomer(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "Secret1!",
		Role:     "customer",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, users.users, 1)
	assert.Empty(t, users.profiles)
	assert.Equal(t, users.users[0].ID.String(), resp.UserID)
	assert.NotEqual(t, "Secret1!", users.users[0].PasswordHash)
}

func TestRegisterEntrepreneurWithProfile(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:         "Bina",
		Email:        "bina@example.com",
		Password:     "Secret1!",
		Role:         "entrepreneur",
		BusinessName: strPtr("Bina Crafts"),
		Category:     strPtr("crafts"),
	})
	require.NoError(t, err)

	require.Len(t, users.users, 1)
	require.Len(t, users.profiles, 1)
	assert.Equal(t, "Bina Crafts", users.profiles[0].BusinessName)
	assert.False(t, users.profiles[0].Verified)
	assert.Equal(t, users.users[0].ID, users.profiles[0].UserID)
}

func TestRegisterEntrepreneurWithoutBusinessName(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Bina",
		Email:    "bina@example.com",
		Password: "Secret1!",
		Role:     "entrepreneur",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "business name required")

	// Nothing persisted
	assert.Empty(t, users.users)
	assert.Empty(t, users.profiles)
}

func TestRegisterWeakPassword(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "weakpass",
		Role:     "customer",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too weak")
	assert.Empty(t, users.users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	req := &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "Secret1!",
		Role:     "customer",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Len(t, users.users, 1)
}

func TestLoginCreatesSession(t *testing.T) {
	repo, _, sessions, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "Secret1!",
		Role:     "customer",
	})
	require.NoError(t, err)

	user, session, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "Secret1!",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "customer", user.Role)
	require.Len(t, sessions.sessions, 1)
	assert.Equal(t, session.Token, sessions.sessions[0].Token)
	assert.NotEqual(t, uuid.Nil, session.Token)
	assert.True(t, session.ExpiresAt.After(session.CreatedAt))
}

func TestLoginErrorsAreUniform(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "Secret1!",
		Role:     "customer",
	})
	require.NoError(t, err)

	_, _, errUnknown := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Secret1!",
	}, "", "")
	_, _, errWrongPass := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "Wrong1!pass",
	}, "", "")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	// Unknown account and bad password must be indistinguishable
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLogoutRevokesSession(t *testing.T) {
	repo, _, sessions, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	token := uuid.New()
	err := svc.Logout(context.Background(), token.String())
	require.NoError(t, err)
	require.Len(t, sessions.revoked, 1)
	assert.Equal(t, token.String(), sessions.revoked[0])
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	repo, _, sessions, _ := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	err := svc.Logout(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Empty(t, sessions.revoked)
}
