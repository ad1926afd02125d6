package service

import (
	"fmt"
	"time"

	"github.com/vietanh2810/medicamp-api/internal/pkg/jwthelper"
)

type AuthService struct {
	signingKey []byte
	ttl        time.Duration
}

func NewAuthService(signingKey string) *AuthService {
	return &AuthService{
		signingKey: []byte(signingKey),
		ttl:        jwthelper.TokenTTL,
	}
}

// IssueToken signs an access token for an email the client has already authenticated
// with its identity provider.
func (s *AuthService) IssueToken(email string) (string, error) {
	token, err := jwthelper.GenerateToken(s.signingKey, email, s.ttl)
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return token, nil
}
