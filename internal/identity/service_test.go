package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/planner/internal/auth"
	"example.com/planner/internal/identity"
	"example.com/planner/internal/persistence/memory"
)

var testTokens = auth.Config{Secret: "test-secret", Issuer: "planner.test"}

func newTestService() *identity.Service {
	return identity.NewService(memory.NewUserStore(), testTokens, time.Hour)
}

func TestSignUpThenSignIn(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.SignUp(ctx, "Alice@Example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, created.Token)

	session, err := service.SignIn(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, created.UserID, session.UserID)

	claims, err := auth.Parse(session.Token, testTokens)
	require.NoError(t, err)
	require.Equal(t, created.UserID, claims.Subject)
	require.True(t, claims.HasScope(auth.ScopeEntriesRead))
	require.True(t, claims.HasScope(auth.ScopeEntriesWrite))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.SignUp(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = service.SignUp(ctx, "alice@example.com", "other")
	require.ErrorIs(t, err, identity.ErrEmailTaken)
}

func TestSignUpRequiresCredentials(t *testing.T) {
	service := newTestService()

	_, err := service.SignUp(context.Background(), "  ", "s3cret")
	require.ErrorIs(t, err, identity.ErrMissingCredentials)

	_, err = service.SignUp(context.Background(), "alice@example.com", "")
	require.ErrorIs(t, err, identity.ErrMissingCredentials)
}

func TestSignInWrongPassword(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.SignUp(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = service.SignIn(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	service := newTestService()

	_, err := service.SignIn(context.Background(), "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)
}
