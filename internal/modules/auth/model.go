package auth

import (
	"time"

	"github.com/google/uuid"
)

// AgentCredential is an API credential issued to a tool-calling agent. The key
// itself is never stored, only its bcrypt hash.
type AgentCredential struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	KeyHash   string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest is the payload for exchanging a credential for a token.
type LoginRequest struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}
