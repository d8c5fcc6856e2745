package service

import (
	"context"
	"crypto/subtle"
	"perfume-designer/internal/config"
)

type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) bool
}

type staticCredentialsImpl struct {
	username string
	password string
}

// NewStaticCredentials accepts exactly one configured username and password.
func NewStaticCredentials(cfg config.Admin) CredentialVerifier {
	return &staticCredentialsImpl{
		username: cfg.Username,
		password: cfg.Password,
	}
}

func (s *staticCredentialsImpl) Verify(_ context.Context, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userOK && passOK
}
