package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	credential *AgentCredential
}

func (f *fakeRepo) GetCredentialByName(_ context.Context, name string) (*AgentCredential, error) {
	if f.credential != nil && f.credential.Name == name {
		return f.credential, nil
	}
	return nil, ErrInvalidCredentials
}

func newTestService(t *testing.T) (Service, uuid.UUID) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-key"), bcrypt.MinCost)
	require.NoError(t, err)

	id := uuid.New()
	repo := &fakeRepo{credential: &AgentCredential{
		ID:      id,
		Name:    "orchestrator",
		KeyHash: string(hash),
	}}
	return NewService(repo, "test-secret", 1), id
}

func TestLoginAndVerify(t *testing.T) {
	svc, id := newTestService(t)

	token, err := svc.Login(context.Background(), "orchestrator", "s3cret-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), subject)
}

func TestLoginWrongKey(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "orchestrator", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "impostor", "s3cret-key")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyGarbageToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenSignedWithOtherSecret(t *testing.T) {
	svc, _ := newTestService(t)

	otherHash, err := bcrypt.GenerateFromPassword([]byte("s3cret-key"), bcrypt.MinCost)
	require.NoError(t, err)
	other := NewService(&fakeRepo{credential: &AgentCredential{
		ID:      uuid.New(),
		Name:    "orchestrator",
		KeyHash: string(otherHash),
	}}, "different-secret", 1)

	token, err := other.Login(context.Background(), "orchestrator", "s3cret-key")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
