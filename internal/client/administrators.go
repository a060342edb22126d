package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// AdministratorsClient implements phplist.AdministratorsClient.
type AdministratorsClient struct {
	httpClient *http.Client
}

// NewAdministratorsClient creates a new administrators client.
func NewAdministratorsClient(httpClient *http.Client) *AdministratorsClient {
	return &AdministratorsClient{
		httpClient: httpClient,
	}
}

// List implements phplist.AdministratorsClient.List.
func (c *AdministratorsClient) List(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.Administrator], error) {
	return getCollection(ctx, c.httpClient, "administrators", opts, phplist.NewAdministrator, "administrators")
}

// Get implements phplist.AdministratorsClient.Get.
func (c *AdministratorsClient) Get(ctx context.Context, administratorID int) (*phplist.Administrator, error) {
	resp, err := c.httpClient.Get(ctx, "administrators/"+strconv.Itoa(administratorID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting administrator: %w", err)
	}

	administrator, err := phplist.NewAdministrator(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing administrator: %w", err)
	}

	return administrator, nil
}

// Create implements phplist.AdministratorsClient.Create.
func (c *AdministratorsClient) Create(ctx context.Context, request *phplist.CreateAdministratorRequest) (*phplist.Administrator, error) {
	resp, err := c.httpClient.Post(ctx, "administrators", request.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating administrator: %w", err)
	}

	administrator, err := phplist.NewAdministrator(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing administrator response: %w", err)
	}

	return administrator, nil
}

// Update implements phplist.AdministratorsClient.Update.
func (c *AdministratorsClient) Update(ctx context.Context, administratorID int, request *phplist.UpdateAdministratorRequest) (*phplist.Administrator, error) {
	resp, err := c.httpClient.Put(ctx, "administrators/"+strconv.Itoa(administratorID), request.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating administrator: %w", err)
	}

	administrator, err := phplist.NewAdministrator(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing administrator response: %w", err)
	}

	return administrator, nil
}

// Delete implements phplist.AdministratorsClient.Delete.
func (c *AdministratorsClient) Delete(ctx context.Context, administratorID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, "administrators/"+strconv.Itoa(administratorID), "administrator")
}
