package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomKey(t *testing.T) string {
	t.Helper()
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	secretKey := randomKey(t)
	issuer := "testIssuer"
	svc := NewJwtService(secretKey, issuer)

	t.Run("Board claim round trip", func(t *testing.T) {
		boardID := uuid.New()
		token, err := svc.Generate(map[string]any{i.ClaimBoardID: boardID.String()}, 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, boardID.String(), claims[i.ClaimBoardID])
		assert.Equal(t, issuer, claims["iss"])
	})

	t.Run("Caller cannot override issuer", func(t *testing.T) {
		token, err := svc.Generate(map[string]any{"iss": "someone-else"}, time.Minute)
		require.NoError(t, err)
		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, issuer, claims["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]any{i.ClaimBoardID: uuid.NewString()}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "otherIssuer")
		token, err := other.Generate(map[string]any{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrUnexpectedIssuer)
	})

	t.Run("Decode token signed with another key", func(t *testing.T) {
		other := NewJwtService(randomKey(t), issuer)
		token, err := other.Generate(map[string]any{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Empty claims", func(t *testing.T) {
		token, err := svc.Generate(map[string]any{}, 5*time.Minute)
		require.NoError(t, err)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Empty(t, claims[i.ClaimBoardID])
	})
}
