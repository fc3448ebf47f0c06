package admin

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
)

func TestAuthorizePlainToken(t *testing.T) {
	cfg := &configs.Config{AdminToken: "s3cret"}

	require.True(t, Authorize(cfg, "s3cret"))
	require.False(t, Authorize(cfg, "S3CRET"))
	require.False(t, Authorize(cfg, "wrong"))
	require.False(t, Authorize(cfg, ""))
}

func TestAuthorizeRejectsEverythingWhenUnconfigured(t *testing.T) {
	cfg := &configs.Config{}

	require.False(t, Authorize(cfg, ""))
	require.False(t, Authorize(cfg, "anything"))
}

func TestAuthorizeBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &configs.Config{
		AdminToken:     "other-token",
		AdminTokenHash: string(hash),
	}

	require.True(t, Authorize(cfg, "s3cret"))
	// The plain token is ignored once a hash is configured.
	require.False(t, Authorize(cfg, "other-token"))
}
