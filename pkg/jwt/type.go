package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey []byte
	issuer    string
}

// Claims represents the JWT claims structure shared with the auth service.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
