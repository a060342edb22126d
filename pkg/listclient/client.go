// Package listclient provides the main entry point for creating phpList API clients
package listclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/phplist/go-client/internal/client"
	"github.com/phplist/go-client/pkg/phplist"
)

// New creates a new phpList API client from the given configuration.
func New(config *phplist.Config) (phplist.Client, error) {
	if config == nil {
		return nil, phplist.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, phplist.ErrBaseURLRequired
	}

	// Normalize the base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithSession creates a new client with a base URL and an existing
// session key, skipping the login round trip.
func NewWithSession(baseURL, sessionKey string) (phplist.Client, error) {
	return New(&phplist.Config{
		BaseURL:    baseURL,
		SessionKey: sessionKey,
	})
}

// NewWithCredentials creates a new client configured with administrator
// credentials. The client is not logged in yet; call Login, or use
// Connect to do both in one step.
func NewWithCredentials(baseURL, loginName, password string) (phplist.Client, error) {
	return New(&phplist.Config{
		BaseURL:   baseURL,
		LoginName: loginName,
		Password:  password,
	})
}

// Connect creates a new client and, when credentials are configured,
// logs in immediately so the returned client holds a live session.
func Connect(ctx context.Context, config *phplist.Config) (phplist.Client, error) {
	apiClient, err := New(config)
	if err != nil {
		return nil, err
	}

	if config.SessionKey == "" && config.LoginName != "" {
		_, err = apiClient.Login(ctx, config.LoginName, config.Password)
		if err != nil {
			return nil, fmt.Errorf("logging in: %w", err)
		}
	}

	return apiClient, nil
}
