package auth

import (
	"context"
	"database/sql"
	"errors"
)

type postgres struct{ db *sql.DB }

// NewPostgresRepository creates a credential repository backed by Postgres.
func NewPostgresRepository(db *sql.DB) Repository { return &postgres{db: db} }

func (r *postgres) GetCredentialByName(ctx context.Context, name string) (*AgentCredential, error) {
	c := &AgentCredential{}
	err := r.db.QueryRowContext(ctx, `
SELECT id,name,key_hash,created_at FROM agent_credentials WHERE name=$1`, name).
		Scan(&c.ID, &c.Name, &c.KeyHash, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
