package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// TemplatesClient implements phplist.TemplatesClient.
type TemplatesClient struct {
	httpClient *http.Client
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(httpClient *http.Client) *TemplatesClient {
	return &TemplatesClient{
		httpClient: httpClient,
	}
}

// List implements phplist.TemplatesClient.List.
func (c *TemplatesClient) List(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.Template], error) {
	return getCollection(ctx, c.httpClient, "templates", opts, phplist.NewTemplate, "templates")
}

// Get implements phplist.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context, templateID int) (*phplist.Template, error) {
	resp, err := c.httpClient.Get(ctx, "templates/"+strconv.Itoa(templateID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	template, err := phplist.NewTemplate(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return template, nil
}

// Create implements phplist.TemplatesClient.Create.
func (c *TemplatesClient) Create(ctx context.Context, request *phplist.CreateTemplateRequest) (*phplist.Template, error) {
	resp, err := c.httpClient.Post(ctx, "templates", request.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}

	template, err := phplist.NewTemplate(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing template response: %w", err)
	}

	return template, nil
}

// Delete implements phplist.TemplatesClient.Delete.
func (c *TemplatesClient) Delete(ctx context.Context, templateID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, "templates/"+strconv.Itoa(templateID), "template")
}
