package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// ListMessagesClient implements phplist.ListMessagesClient.
type ListMessagesClient struct {
	httpClient *http.Client
}

// NewListMessagesClient creates a new list messages client.
func NewListMessagesClient(httpClient *http.Client) *ListMessagesClient {
	return &ListMessagesClient{
		httpClient: httpClient,
	}
}

// CampaignsForList implements phplist.ListMessagesClient.CampaignsForList.
func (c *ListMessagesClient) CampaignsForList(ctx context.Context, listID int, opts *phplist.ListOptions) (*phplist.Collection[*phplist.Campaign], error) {
	path := "lists/" + strconv.Itoa(listID) + "/campaigns"

	return getCollection(ctx, c.httpClient, path, opts, phplist.NewCampaign, "list campaigns")
}

// ListsForCampaign implements phplist.ListMessagesClient.ListsForCampaign.
func (c *ListMessagesClient) ListsForCampaign(ctx context.Context, campaignID int, opts *phplist.ListOptions) (*phplist.Collection[*phplist.SubscriberList], error) {
	path := "campaigns/" + strconv.Itoa(campaignID) + "/lists"

	return getCollection(ctx, c.httpClient, path, opts, phplist.NewSubscriberList, "campaign lists")
}

// Associate implements phplist.ListMessagesClient.Associate.
func (c *ListMessagesClient) Associate(ctx context.Context, campaignID, listID int) (*phplist.DeleteResult, error) {
	path := "campaigns/" + strconv.Itoa(campaignID) + "/lists/" + strconv.Itoa(listID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("associating campaign with list: %w", err)
	}

	return phplist.NewDeleteResult(responseObject(resp)), nil
}

// Dissociate implements phplist.ListMessagesClient.Dissociate.
func (c *ListMessagesClient) Dissociate(ctx context.Context, campaignID, listID int) (*phplist.DeleteResult, error) {
	path := "campaigns/" + strconv.Itoa(campaignID) + "/lists/" + strconv.Itoa(listID)

	return deleteResource(ctx, c.httpClient, path, "campaign list association")
}

// IsAssociated implements phplist.ListMessagesClient.IsAssociated.
func (c *ListMessagesClient) IsAssociated(ctx context.Context, campaignID, listID int) (bool, error) {
	path := "campaigns/" + strconv.Itoa(campaignID) + "/lists/" + strconv.Itoa(listID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		if phplist.IsNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("checking campaign list association: %w", err)
	}

	return responseObject(resp).Bool("is_associated"), nil
}

// RemoveAllLists implements phplist.ListMessagesClient.RemoveAllLists.
func (c *ListMessagesClient) RemoveAllLists(ctx context.Context, campaignID int) (*phplist.DeleteResult, error) {
	path := "campaigns/" + strconv.Itoa(campaignID) + "/lists"

	return deleteResource(ctx, c.httpClient, path, "campaign list associations")
}
