package auth

import (
	"context"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Config struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

var ErrNoSecret = errors.New("jwt secret is empty")

// Validate rejects a config that would accept tokens signed with an empty key.
func (c Config) Validate() error {
	if c.Secret == "" {
		return ErrNoSecret
	}
	return nil
}

// Claims mirror the tokens issued by the account service: sub holds the user id.
type Claims struct {
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

type Identity struct {
	UserID int
	Role   string
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoIdentity   = errors.New("identity is missing")
)

func ParseToken(tokenStr string, secret []byte) (Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || claims.UserType == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: id, Role: claims.UserType}, nil
}

type identityKey struct{}

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
