package jwt

import "errors"

var (
	ErrSecretKeyTooShort = errors.New("jwt: secret key must be at least 32 characters")
	ErrInvalidToken      = errors.New("jwt: invalid token")
)
