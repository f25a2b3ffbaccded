package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned for any failed login, without revealing
// whether the credential name exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Repository defines agent-credential data access.
type Repository interface {
	GetCredentialByName(ctx context.Context, name string) (*AgentCredential, error)
}
