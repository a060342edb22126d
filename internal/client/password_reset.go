package client

import (
	"context"
	"fmt"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// PasswordResetClient implements phplist.PasswordResetClient.
type PasswordResetClient struct {
	httpClient *http.Client
}

// NewPasswordResetClient creates a new password reset client.
func NewPasswordResetClient(httpClient *http.Client) *PasswordResetClient {
	return &PasswordResetClient{
		httpClient: httpClient,
	}
}

// Request implements phplist.PasswordResetClient.Request.
func (c *PasswordResetClient) Request(ctx context.Context, email string) (*phplist.DeleteResult, error) {
	payload := phplist.NewPayload().Set("email", email)

	resp, err := c.httpClient.Post(ctx, "password-reset", payload)
	if err != nil {
		return nil, fmt.Errorf("requesting password reset: %w", err)
	}

	return phplist.NewDeleteResult(responseObject(resp)), nil
}

// Validate implements phplist.PasswordResetClient.Validate.
func (c *PasswordResetClient) Validate(ctx context.Context, token string) (bool, error) {
	payload := phplist.NewPayload().Set("token", token)

	resp, err := c.httpClient.Post(ctx, "password-reset/validate", payload)
	if err != nil {
		return false, fmt.Errorf("validating reset token: %w", err)
	}

	return responseObject(resp).Bool("valid"), nil
}

// Reset implements phplist.PasswordResetClient.Reset.
func (c *PasswordResetClient) Reset(ctx context.Context, token, newPassword string) (*phplist.DeleteResult, error) {
	payload := phplist.NewPayload().
		Set("token", token).
		Set("newPassword", newPassword)

	resp, err := c.httpClient.Post(ctx, "password-reset/reset", payload)
	if err != nil {
		return nil, fmt.Errorf("resetting password: %w", err)
	}

	return phplist.NewDeleteResult(responseObject(resp)), nil
}
