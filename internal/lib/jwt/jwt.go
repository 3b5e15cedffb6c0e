package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"

	"article-api/internal/domain/models"
)

const (
	ClaimUID   = "uid"
	ClaimName  = "name"
	ClaimRoles = "roles"
)

func NewToken(user models.User, duration time.Duration, secret string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims[ClaimUID] = user.ID
	claims[ClaimName] = user.Name
	claims[ClaimRoles] = user.Roles
	claims["exp"] = time.Now().Add(duration).Unix()

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// UserFromContext rebuilds the caller from the claims of a token verified by
// jwtauth.Verifier.
func UserFromContext(ctx context.Context) (models.User, error) {
	const op = "lib.jwt.UserFromContext"

	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if token == nil {
		return models.User{}, fmt.Errorf("%s: %w", op, jwtauth.ErrNoTokenFound)
	}

	var user models.User

	switch uid := claims[ClaimUID].(type) {
	case float64:
		user.ID = int64(uid)
	case int64:
		user.ID = uid
	}

	if name, ok := claims[ClaimName].(string); ok {
		user.Name = name
	}

	switch roles := claims[ClaimRoles].(type) {
	case []string:
		user.Roles = roles
	case []interface{}:
		for _, r := range roles {
			if s, ok := r.(string); ok {
				user.Roles = append(user.Roles, s)
			}
		}
	}

	return user, nil
}
