package sbclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subchain-io/subchain-go/pkg/sbclient"
	"github.com/subchain-io/subchain-go/pkg/subchain"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := sbclient.New(nil)
		assert.ErrorIs(t, err, subchain.ErrConfigRequired)
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		client, err := sbclient.NewWithEndpoint("https://api.subchain.example/")
		require.NoError(t, err)
		assert.False(t, client.IsAuthenticated())
	})

	t.Run("scheme defaults to https", func(t *testing.T) {
		client, err := sbclient.NewWithEndpoint("api.subchain.example")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("seeded tokens authenticate the session", func(t *testing.T) {
		client, err := sbclient.NewWithTokens("https://api.subchain.example", "access", "refresh")
		require.NoError(t, err)
		assert.True(t, client.IsAuthenticated())
	})
}

func TestResolveBaseURL(t *testing.T) {
	t.Run("environment wins", func(t *testing.T) {
		t.Setenv(sbclient.EnvAPIURL, "https://api.subchain.example")
		assert.Equal(t, "https://api.subchain.example", sbclient.ResolveBaseURL())
	})

	t.Run("falls back to the local default", func(t *testing.T) {
		t.Setenv(sbclient.EnvAPIURL, "")
		assert.Equal(t, sbclient.DefaultBaseURL, sbclient.ResolveBaseURL())
	})
}

func TestNewWithStore(t *testing.T) {
	t.Run("hydrates the session from the store", func(t *testing.T) {
		store := sbclient.NewFileTokenStore(t.TempDir() + "/tokens.yml")
		require.NoError(t, store.Save(&subchain.TokenPair{
			AccessToken:  "stored-access",
			RefreshToken: "stored-refresh",
		}))

		client, err := sbclient.NewWithStore("https://api.subchain.example", store)
		require.NoError(t, err)
		assert.True(t, client.IsAuthenticated())
	})

	t.Run("empty store means no session", func(t *testing.T) {
		store := sbclient.NewFileTokenStore(t.TempDir() + "/tokens.yml")

		client, err := sbclient.NewWithStore("https://api.subchain.example", store)
		require.NoError(t, err)
		assert.False(t, client.IsAuthenticated())
	})
}
