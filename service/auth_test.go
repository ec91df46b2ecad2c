package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/raushankrgupta/intern-guide-backend/models"
	"github.com/raushankrgupta/intern-guide-backend/store"
)

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(store.NewMemory(), nil)

	id, err := s.Signup(ctx, SignupInput{Name: "Bo", Email: "bo@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loginID, name, err := s.Login(ctx, "bo@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, id, loginID)
	require.Equal(t, "Bo", name)
}

func TestSignupMissingFields(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	s := NewAuthService(mem, nil)

	cases := []SignupInput{
		{Email: "a@x.com", Password: "pw"},
		{Name: "A", Password: "pw"},
		{Name: "A", Email: "a@x.com"},
	}
	for _, in := range cases {
		_, err := s.Signup(ctx, in)
		require.ErrorIs(t, err, models.ErrValidation)
	}

	// No insert happened for any rejected signup.
	_, err := mem.FindByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(store.NewMemory(), nil)

	_, err := s.Signup(ctx, SignupInput{Name: "Bo", Email: "bo@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = s.Signup(ctx, SignupInput{Name: "Bo Again", Email: "bo@x.com", Password: "pw2"})
	require.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestSignupHashesPassword(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	s := NewAuthService(mem, nil)

	_, err := s.Signup(ctx, SignupInput{Name: "Bo", Email: "bo@x.com", Password: "pw1"})
	require.NoError(t, err)

	stored, err := mem.FindByEmail(ctx, "bo@x.com")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw1")))
}

func TestSignupDefaultsEmptySlices(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	s := NewAuthService(mem, nil)

	_, err := s.Signup(ctx, SignupInput{Name: "Bo", Email: "bo@x.com", Password: "pw1"})
	require.NoError(t, err)

	stored, err := mem.FindByEmail(ctx, "bo@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored.Academics)
	require.NotNil(t, stored.Hobbies)
	require.NotNil(t, stored.Skills)
	require.Empty(t, stored.Academics)
}

func TestSignupSendsWelcomeEmail(t *testing.T) {
	ctx := context.Background()

	var gotName, gotEmail string
	sender := func(toName, toEmail, subject, text, html string) error {
		gotName, gotEmail = toName, toEmail
		return nil
	}
	s := NewAuthService(store.NewMemory(), sender)

	_, err := s.Signup(ctx, SignupInput{Name: "Bo", Email: "bo@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.Equal(t, "Bo", gotName)
	require.Equal(t, "bo@x.com", gotEmail)
}

func TestSignupSucceedsWhenEmailFails(t *testing.T) {
	ctx := context.Background()
	sender := func(toName, toEmail, subject, text, html string) error {
		return context.DeadlineExceeded
	}
	s := NewAuthService(store.NewMemory(), sender)

	id, err := s.Signup(ctx, SignupInput{Name: "Bo", Email: "bo@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(store.NewMemory(), nil)

	_, err := s.Signup(ctx, SignupInput{Name: "Bo", Email: "bo@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, _, err = s.Login(ctx, "bo@x.com", "wrong")
	require.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(store.NewMemory(), nil)

	_, _, err := s.Login(ctx, "nobody@x.com", "pw")
	require.ErrorIs(t, err, models.ErrNotFound)
}
