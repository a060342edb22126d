package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// BouncesClient implements phplist.BouncesClient.
type BouncesClient struct {
	httpClient *http.Client
}

// NewBouncesClient creates a new bounces client.
func NewBouncesClient(httpClient *http.Client) *BouncesClient {
	return &BouncesClient{
		httpClient: httpClient,
	}
}

// ListRegexes implements phplist.BouncesClient.ListRegexes.
func (c *BouncesClient) ListRegexes(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.BounceRegex], error) {
	return getCollection(ctx, c.httpClient, "bounces/regexes", opts, phplist.NewBounceRegex, "bounce regexes")
}

// GetRegex implements phplist.BouncesClient.GetRegex.
func (c *BouncesClient) GetRegex(ctx context.Context, regexID int) (*phplist.BounceRegex, error) {
	resp, err := c.httpClient.Get(ctx, "bounces/regexes/"+strconv.Itoa(regexID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting bounce regex: %w", err)
	}

	regex, err := phplist.NewBounceRegex(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing bounce regex: %w", err)
	}

	return regex, nil
}

// UpsertRegex implements phplist.BouncesClient.UpsertRegex. The server
// matches on the regex hash, so the same call creates or updates.
func (c *BouncesClient) UpsertRegex(ctx context.Context, request *phplist.UpsertBounceRegexRequest) (*phplist.BounceRegex, error) {
	resp, err := c.httpClient.Put(ctx, "bounces/regexes", request.Payload())
	if err != nil {
		return nil, fmt.Errorf("upserting bounce regex: %w", err)
	}

	regex, err := phplist.NewBounceRegex(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing bounce regex response: %w", err)
	}

	return regex, nil
}

// DeleteRegex implements phplist.BouncesClient.DeleteRegex.
func (c *BouncesClient) DeleteRegex(ctx context.Context, regexID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, "bounces/regexes/"+strconv.Itoa(regexID), "bounce regex")
}
