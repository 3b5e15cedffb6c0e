package users

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"article-api/internal/config"
	"article-api/internal/domain/models"
	"article-api/internal/storage"
)

// Storage is a read-only set of accounts built once from configuration.
type Storage struct {
	users map[string]models.User
}

func New(accounts []config.User) (*Storage, error) {
	const op = "storage.users.New"

	users := make(map[string]models.User, len(accounts))
	for i, acc := range accounts {
		if _, ok := users[acc.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate user %q", op, acc.Name)
		}

		hash := []byte(acc.PasswordHash)
		if len(hash) == 0 {
			var err error
			hash, err = bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("%s: failed to hash password of %q: %w", op, acc.Name, err)
			}
		} else if _, err := bcrypt.Cost(hash); err != nil {
			return nil, fmt.Errorf("%s: invalid password hash of %q: %w", op, acc.Name, err)
		}

		roles := make([]string, len(acc.Roles))
		copy(roles, acc.Roles)

		users[acc.Name] = models.User{
			ID:       int64(i + 1),
			Name:     acc.Name,
			PassHash: hash,
			Roles:    roles,
		}
	}

	return &Storage{users: users}, nil
}

func (s *Storage) UserByName(_ context.Context, name string) (models.User, error) {
	const op = "storage.users.UserByName"

	user, ok := s.users[name]
	if !ok {
		return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return user, nil
}
