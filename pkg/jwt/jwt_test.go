package jwt

import (
	"testing"
	"time"

	"MiniTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	st := NewSessionToken("test-secret", time.Hour)

	token, err := st.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userId, err := st.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userId)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewSessionToken("secret-a", time.Hour)
	verifier := NewSessionToken("secret-b", time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, errno.TokenInvailedErr)
}

func TestVerifyExpired(t *testing.T) {
	st := NewSessionToken("test-secret", -time.Minute)

	token, err := st.Issue(42)
	require.NoError(t, err)

	_, err = st.Verify(token)
	assert.ErrorIs(t, err, errno.TokenInvailedErr)
}

func TestVerifyMalformed(t *testing.T) {
	st := NewSessionToken("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := st.Verify(token)
		assert.ErrorIs(t, err, errno.TokenInvailedErr, "token %q", token)
	}
}
