package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// CampaignsClient implements phplist.CampaignsClient.
type CampaignsClient struct {
	httpClient *http.Client
}

// NewCampaignsClient creates a new campaigns client.
func NewCampaignsClient(httpClient *http.Client) *CampaignsClient {
	return &CampaignsClient{
		httpClient: httpClient,
	}
}

// List implements phplist.CampaignsClient.List.
func (c *CampaignsClient) List(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.Campaign], error) {
	return getCollection(ctx, c.httpClient, "campaigns", opts, phplist.NewCampaign, "campaigns")
}

// Get implements phplist.CampaignsClient.Get.
func (c *CampaignsClient) Get(ctx context.Context, campaignID int) (*phplist.Campaign, error) {
	resp, err := c.httpClient.Get(ctx, "campaigns/"+strconv.Itoa(campaignID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting campaign: %w", err)
	}

	campaign, err := phplist.NewCampaign(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing campaign: %w", err)
	}

	return campaign, nil
}

// Create implements phplist.CampaignsClient.Create.
func (c *CampaignsClient) Create(ctx context.Context, request *phplist.CreateCampaignRequest) (*phplist.Campaign, error) {
	resp, err := c.httpClient.Post(ctx, "campaigns", request.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating campaign: %w", err)
	}

	campaign, err := phplist.NewCampaign(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing campaign response: %w", err)
	}

	return campaign, nil
}

// Update implements phplist.CampaignsClient.Update.
func (c *CampaignsClient) Update(ctx context.Context, campaignID int, request *phplist.UpdateCampaignRequest) (*phplist.Campaign, error) {
	resp, err := c.httpClient.Put(ctx, "campaigns/"+strconv.Itoa(campaignID), request.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating campaign: %w", err)
	}

	campaign, err := phplist.NewCampaign(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing campaign response: %w", err)
	}

	return campaign, nil
}

// Delete implements phplist.CampaignsClient.Delete.
func (c *CampaignsClient) Delete(ctx context.Context, campaignID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, "campaigns/"+strconv.Itoa(campaignID), "campaign")
}
