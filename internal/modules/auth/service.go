package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Service defines authentication for tool-calling agents.
type Service interface {
	// Login exchanges a credential name and key for a signed token.
	Login(ctx context.Context, name, key string) (string, error)

	// Verify validates a token and returns the credential id it was issued to.
	Verify(token string) (string, error)
}

type service struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new auth service. tokenTTLHours bounds token lifetime.
func NewService(repo Repository, secret string, tokenTTLHours int) Service {
	return &service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: time.Duration(tokenTTLHours) * time.Hour,
	}
}

func (s *service) Login(ctx context.Context, name, key string) (string, error) {
	cred, err := s.repo.GetCredentialByName(ctx, name)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.KeyHash), []byte(key)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &jwt.StandardClaims{
		Subject:   cred.ID.String(),
		ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *service) Verify(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}
	return claims.Subject, nil
}
