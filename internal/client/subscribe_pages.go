package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// SubscribePagesClient implements phplist.SubscribePagesClient.
type SubscribePagesClient struct {
	httpClient *http.Client
}

// NewSubscribePagesClient creates a new subscribe pages client.
func NewSubscribePagesClient(httpClient *http.Client) *SubscribePagesClient {
	return &SubscribePagesClient{
		httpClient: httpClient,
	}
}

// List implements phplist.SubscribePagesClient.List.
func (c *SubscribePagesClient) List(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.SubscribePage], error) {
	return getCollection(ctx, c.httpClient, "subscribe-pages", opts, phplist.NewSubscribePage, "subscribe pages")
}

// Get implements phplist.SubscribePagesClient.Get.
func (c *SubscribePagesClient) Get(ctx context.Context, pageID int) (*phplist.SubscribePage, error) {
	resp, err := c.httpClient.Get(ctx, "subscribe-pages/"+strconv.Itoa(pageID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscribe page: %w", err)
	}

	page, err := phplist.NewSubscribePage(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscribe page: %w", err)
	}

	return page, nil
}

// Create implements phplist.SubscribePagesClient.Create.
func (c *SubscribePagesClient) Create(ctx context.Context, request *phplist.CreateSubscribePageRequest) (*phplist.SubscribePage, error) {
	resp, err := c.httpClient.Post(ctx, "subscribe-pages", request.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating subscribe page: %w", err)
	}

	page, err := phplist.NewSubscribePage(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscribe page response: %w", err)
	}

	return page, nil
}

// Update implements phplist.SubscribePagesClient.Update.
func (c *SubscribePagesClient) Update(ctx context.Context, pageID int, request *phplist.UpdateSubscribePageRequest) (*phplist.SubscribePage, error) {
	resp, err := c.httpClient.Put(ctx, "subscribe-pages/"+strconv.Itoa(pageID), request.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating subscribe page: %w", err)
	}

	page, err := phplist.NewSubscribePage(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscribe page response: %w", err)
	}

	return page, nil
}

// Delete implements phplist.SubscribePagesClient.Delete.
func (c *SubscribePagesClient) Delete(ctx context.Context, pageID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, "subscribe-pages/"+strconv.Itoa(pageID), "subscribe page")
}
