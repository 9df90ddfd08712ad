package sessions

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov87/authgate/internal/common"
	"github.com/akarpov87/authgate/internal/server/auth"
	"github.com/akarpov87/authgate/internal/server/config"
	"github.com/akarpov87/authgate/internal/server/models"
	"github.com/akarpov87/authgate/internal/server/users"
)

func newTestService(t *testing.T, ttl time.Duration) (*Service, *users.MemoryRepository) {
	t.Helper()

	digest, err := auth.HashPassword("password123", 4)
	require.NoError(t, err)

	repo := users.NewMemoryRepositoryFromFixture([]models.User{
		{
			Name:           "John Doe",
			Username:       "johndoe",
			Email:          "johndoe@example.com",
			HashedPassword: digest,
		},
	})

	cfg := &config.Config{SecretKey: "test-secret", TokenTTL: ttl}
	return NewService(repo, cfg), repo
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Hour)

	user, err := svc.Authenticate(context.Background(), "johndoe", "password123")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", user.Username)
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Hour)
	ctx := context.Background()

	_, errUnknown := svc.Authenticate(ctx, "nobody", "password123")
	_, errWrongPw := svc.Authenticate(ctx, "johndoe", "wrong-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)

	// An unknown username and a wrong password must be the same failure.
	assert.ErrorIs(t, errUnknown, common.ErrorUnauthorized)
	assert.ErrorIs(t, errWrongPw, common.ErrorUnauthorized)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestIssueAndResolve_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Hour)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "johndoe", "password123")
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", resolved.Username)
	assert.Equal(t, "John Doe", resolved.Name)
}

func TestResolve_Expired(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, -1*time.Second)

	token, err := svc.IssueToken(&models.User{Username: "johndoe"})
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestResolve_TamperedToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Hour)

	token, err := svc.IssueToken(&models.User{Username: "johndoe"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Resolve(context.Background(), tampered)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestResolve_DeletedUserRevokesToken(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, time.Hour)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "johndoe", "password123")
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	// The token still verifies, but its subject is gone from the store.
	require.NoError(t, repo.Delete(ctx, "johndoe"))

	_, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, common.ErrUnknownUser)
}

func TestTokenTTL_MatchesConfig(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, 45*time.Minute)
	assert.Equal(t, 45*time.Minute, svc.TokenTTL())
}
