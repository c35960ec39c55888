package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/wellness/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims is the payload shared with the identity provider.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
