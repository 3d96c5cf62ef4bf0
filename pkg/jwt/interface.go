package jwt

import (
	"assistant-srv/pkg/scope"
)

// IManager defines the interface for JWT token verification. This service only
// verifies tokens issued by the auth service; it never issues its own.
// Implementations are safe for concurrent use.
type IManager interface {
	VerifyToken(tokenString string) (*Claims, error)
	Verify(token string) (scope.Payload, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
	}, nil
}

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return ErrSecretKeyTooShort
	}
	return nil
}
