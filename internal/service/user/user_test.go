package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"article-api/internal/domain/models"
	"article-api/internal/lib/logger/handlers/slogdiscard"
	"article-api/internal/storage"
)

type fakeStorage struct {
	users map[string]models.User
	err   error
}

func (f *fakeStorage) UserByName(_ context.Context, name string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	u, ok := f.users[name]
	if !ok {
		return models.User{}, fmt.Errorf("fake: %w", storage.ErrUserNotFound)
	}
	return u, nil
}

func newService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	st := &fakeStorage{users: map[string]models.User{
		"admin": {ID: 2, Name: "admin", PassHash: hash, Roles: []string{"USER", "ADMIN"}},
	}}

	return New(slogdiscard.NewDiscardLogger(), st, time.Hour, "secret")
}

func TestService_Authenticate(t *testing.T) {
	svc := newService(t)

	user, err := svc.Authenticate(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Name)
	assert.True(t, user.HasRole("ADMIN"))

	_, err = svc.Authenticate(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate_StorageError(t *testing.T) {
	svc := New(slogdiscard.NewDiscardLogger(), &fakeStorage{err: errors.New("ldap down")}, time.Hour, "secret")

	_, err := svc.Authenticate(context.Background(), "admin", "admin123")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login(t *testing.T) {
	svc := newService(t)

	token, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	parsed, err := gojwt.Parse(token, func(*gojwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(gojwt.MapClaims)
	assert.Equal(t, "admin", claims["name"])
	assert.Equal(t, []interface{}{"USER", "ADMIN"}, claims["roles"])

	_, err = svc.Login(context.Background(), "admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
