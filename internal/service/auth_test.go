package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = user

	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "staff@example.com",
		Password: "sup3rsecret",
		Name:     "Staff Member",
		Role:     "staff",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "sup3rsecret", created.Password, "password must be stored hashed")

	user, err := svc.Login(context.Background(), "staff@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "staff@example.com", Password: "sup3rsecret"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "staff@example.com", "wrong")

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "staff@example.com", Password: "sup3rsecret"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.User{Email: "staff@example.com", Password: "0therSecret"})

	require.ErrorIs(t, err, ErrUserEmailExists)
}
