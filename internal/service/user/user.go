package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"article-api/internal/domain/models"
	"article-api/internal/lib/jwt"
	"article-api/internal/lib/logger/sl"
	"article-api/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Storage is the identity provider the service authenticates against.
type Storage interface {
	UserByName(ctx context.Context, name string) (models.User, error)
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	tokenTTL time.Duration
	secret   string
}

func New(log *slog.Logger, storage Storage, ttl time.Duration, secret string) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		tokenTTL: ttl,
		secret:   secret,
	}
}

// Authenticate checks the password of the named user. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, userName, password string) (models.User, error) {
	const op = "service.user.Authenticate"

	log := s.log.With(slog.String("op", op), slog.String("user", userName))

	// Send to data layer
	user, err := s.storage.UserByName(ctx, userName)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("user not found")
			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user by name", sl.Error(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	// Checking if password correct
	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		log.Info("incorrect password")
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, userName, password string) (token string, err error) {
	const op = "service.user.Login"

	log := s.log.With(slog.String("op", op))

	user, err := s.Authenticate(ctx, userName, password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	// Generating token
	token, err = jwt.NewToken(user, s.tokenTTL, s.secret)
	if err != nil {
		log.Error("failed to create new token", sl.Error(err))
		return "", fmt.Errorf("%s: failed to create new token: %w", op, err)
	}

	return token, nil
}
