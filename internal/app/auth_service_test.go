package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"miniblog/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(userRepo, "test-secret", time.Hour), userRepo
}

func TestSignupHashesPassword(t *testing.T) {
	svc, userRepo := newAuthService(t)

	user, err := svc.Signup(SignupInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	stored, err := userRepo.GetByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, userRepo := newAuthService(t)

	_, err := svc.Signup(SignupInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Signup(SignupInput{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, ErrUsernameExists)

	// still exactly one row
	first, err := userRepo.GetByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, first)
	second, err := userRepo.GetByID(first.ID + 1)
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestSignupEmptyInput(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(SignupInput{Username: "", Password: "pw1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Signup(SignupInput{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	created, err := svc.Signup(SignupInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	result, err := svc.Login(LoginInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, created.ID, result.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(SignupInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(LoginInput{Username: "nobody", Password: "pw1"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestGetUserByID(t *testing.T) {
	svc, _ := newAuthService(t)

	created, err := svc.Signup(SignupInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	user, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	missing, err := svc.GetUserByID(created.ID + 100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
