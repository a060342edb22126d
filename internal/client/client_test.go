package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phplist/go-client/pkg/phplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client, err := New(&phplist.Config{BaseURL: "https://lists.example.com"})
	require.NoError(t, err)
	assert.NotNil(t, client.Subscribers())
	assert.NotNil(t, client.Lists())
	assert.NotNil(t, client.Campaigns())
	assert.Empty(t, client.SessionKey())
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(&phplist.Config{})
	require.ErrorIs(t, err, phplist.ErrBaseURLRequired)
}

func TestNew_InstallsConfiguredSessionKey(t *testing.T) {
	client, err := New(&phplist.Config{
		BaseURL:    "https://lists.example.com",
		SessionKey: "preexisting-key",
	})
	require.NoError(t, err)
	assert.Equal(t, "preexisting-key", client.SessionKey())
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/sessions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]any

		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "admin", body["login_name"])
		assert.Equal(t, "secret", body["password"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          87,
			"key":         "2983weiujfewojf",
			"expiry_date": "2026-09-01T18:00:00+00:00",
		})
	}))
	defer server.Close()

	client, err := New(&phplist.Config{BaseURL: server.URL})
	require.NoError(t, err)

	session, err := client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, 87, session.ID)
	assert.Equal(t, "2983weiujfewojf", session.Key)
	assert.Equal(t, "2983weiujfewojf", client.SessionKey())
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Invalid credentials"})
	}))
	defer server.Close()

	client, err := New(&phplist.Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, phplist.IsAuthentication(err))
	assert.Empty(t, client.SessionKey())
}

func TestClient_Login_MissingSessionKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 2xx but no key in the body.
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 87})
	}))
	defer server.Close()

	client, err := New(&phplist.Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "admin", "secret")
	require.Error(t, err)
	assert.True(t, phplist.IsAuthentication(err))
	assert.ErrorIs(t, err, phplist.ErrSessionKeyMissing)
}

func TestClient_Logout(t *testing.T) {
	loginCalls := 0
	deleteCalls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST":
			loginCalls++

			_ = json.NewEncoder(w).Encode(map[string]any{"id": 87, "key": "session-key"})
		case "DELETE":
			deleteCalls++

			assert.Equal(t, "/api/v2/sessions/87", r.URL.Path)
			assert.Equal(t, "session-key", r.Header.Get("php-auth-pw"))
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	client, err := New(&phplist.Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	require.NoError(t, client.Logout(context.Background()))
	assert.Equal(t, 1, loginCalls)
	assert.Equal(t, 1, deleteCalls)
	assert.Empty(t, client.SessionKey())
}

func TestClient_Logout_NotAuthenticated(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client, err := New(&phplist.Config{BaseURL: server.URL})
	require.NoError(t, err)

	err = client.Logout(context.Background())
	require.Error(t, err)
	assert.True(t, phplist.IsAuthentication(err))
	// Failing locally means no request reaches the server.
	assert.Equal(t, 0, requests)
}

func TestClient_Logout_ExternalSession(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client, err := New(&phplist.Config{BaseURL: server.URL})
	require.NoError(t, err)

	// A key installed by hand has no server-side session ID; logout
	// only discards it locally.
	client.SetSession("external-key")
	require.NoError(t, client.Logout(context.Background()))
	assert.Empty(t, client.SessionKey())
	assert.Equal(t, 0, requests)
}
