package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// BlacklistClient implements phplist.BlacklistClient.
type BlacklistClient struct {
	httpClient *http.Client
}

// NewBlacklistClient creates a new blacklist client.
func NewBlacklistClient(httpClient *http.Client) *BlacklistClient {
	return &BlacklistClient{
		httpClient: httpClient,
	}
}

// Add implements phplist.BlacklistClient.Add.
func (c *BlacklistClient) Add(ctx context.Context, email, reason string) (*phplist.BlacklistStatus, error) {
	payload := phplist.NewPayload().
		Set("email", email).
		Set("reason", reason)

	resp, err := c.httpClient.Post(ctx, "blacklist", payload)
	if err != nil {
		return nil, fmt.Errorf("blacklisting email: %w", err)
	}

	status, err := phplist.NewBlacklistStatus(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing blacklist response: %w", err)
	}

	return status, nil
}

// Check implements phplist.BlacklistClient.Check.
func (c *BlacklistClient) Check(ctx context.Context, email string) (*phplist.BlacklistStatus, error) {
	resp, err := c.httpClient.Get(ctx, "blacklist/"+url.PathEscape(email), nil)
	if err != nil {
		if phplist.IsNotFound(err) {
			// Unknown addresses are simply not blacklisted.
			return &phplist.BlacklistStatus{Email: email, Blacklisted: false}, nil
		}

		return nil, fmt.Errorf("checking blacklist: %w", err)
	}

	status, err := phplist.NewBlacklistStatus(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing blacklist status: %w", err)
	}

	return status, nil
}

// Info implements phplist.BlacklistClient.Info.
func (c *BlacklistClient) Info(ctx context.Context, email string) (*phplist.BlacklistStatus, error) {
	resp, err := c.httpClient.Get(ctx, "blacklist/"+url.PathEscape(email)+"/info", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching blacklist info: %w", err)
	}

	status, err := phplist.NewBlacklistStatus(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing blacklist info: %w", err)
	}

	return status, nil
}

// Remove implements phplist.BlacklistClient.Remove.
func (c *BlacklistClient) Remove(ctx context.Context, email string) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, "blacklist/"+url.PathEscape(email), "blacklist entry")
}
