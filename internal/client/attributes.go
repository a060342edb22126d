package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// attributeDefinitions provides the definition CRUD shared by the
// administrator and subscriber attribute families. basePath is the
// definition collection path, e.g. "administrators/attributes".
type attributeDefinitions struct {
	httpClient *http.Client
	basePath   string
}

func (a *attributeDefinitions) ListDefinitions(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.AttributeDefinition], error) {
	return getCollection(ctx, a.httpClient, a.basePath, opts, phplist.NewAttributeDefinition, "attribute definitions")
}

func (a *attributeDefinitions) GetDefinition(ctx context.Context, definitionID int) (*phplist.AttributeDefinition, error) {
	resp, err := a.httpClient.Get(ctx, a.basePath+"/"+strconv.Itoa(definitionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting attribute definition: %w", err)
	}

	definition, err := phplist.NewAttributeDefinition(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing attribute definition: %w", err)
	}

	return definition, nil
}

func (a *attributeDefinitions) CreateDefinition(ctx context.Context, request *phplist.CreateAttributeDefinitionRequest) (*phplist.AttributeDefinition, error) {
	resp, err := a.httpClient.Post(ctx, a.basePath, request.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating attribute definition: %w", err)
	}

	definition, err := phplist.NewAttributeDefinition(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing attribute definition response: %w", err)
	}

	return definition, nil
}

func (a *attributeDefinitions) UpdateDefinition(ctx context.Context, definitionID int, request *phplist.UpdateAttributeDefinitionRequest) (*phplist.AttributeDefinition, error) {
	resp, err := a.httpClient.Put(ctx, a.basePath+"/"+strconv.Itoa(definitionID), request.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating attribute definition: %w", err)
	}

	definition, err := phplist.NewAttributeDefinition(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing attribute definition response: %w", err)
	}

	return definition, nil
}

func (a *attributeDefinitions) DeleteDefinition(ctx context.Context, definitionID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, a.httpClient, a.basePath+"/"+strconv.Itoa(definitionID), "attribute definition")
}

// valuePath builds the per-owner attribute value path, e.g.
// "administrators/3/attributes/7".
func valuePath(ownerPath string, ownerID, definitionID int) string {
	return ownerPath + "/" + strconv.Itoa(ownerID) + "/attributes/" + strconv.Itoa(definitionID)
}

// AdminAttributesClient implements phplist.AdminAttributesClient.
type AdminAttributesClient struct {
	attributeDefinitions
}

// NewAdminAttributesClient creates a new admin attributes client.
func NewAdminAttributesClient(httpClient *http.Client) *AdminAttributesClient {
	return &AdminAttributesClient{
		attributeDefinitions: attributeDefinitions{
			httpClient: httpClient,
			basePath:   "administrators/attributes",
		},
	}
}

// ListValues implements phplist.AdminAttributesClient.ListValues.
func (c *AdminAttributesClient) ListValues(ctx context.Context, administratorID int, opts *phplist.ListOptions) (*phplist.Collection[*phplist.AdminAttributeValue], error) {
	path := "administrators/" + strconv.Itoa(administratorID) + "/attributes"

	return getCollection(ctx, c.httpClient, path, opts, phplist.NewAdminAttributeValue, "admin attribute values")
}

// GetValue implements phplist.AdminAttributesClient.GetValue.
func (c *AdminAttributesClient) GetValue(ctx context.Context, administratorID, definitionID int) (*phplist.AdminAttributeValue, error) {
	resp, err := c.httpClient.Get(ctx, valuePath("administrators", administratorID, definitionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting admin attribute value: %w", err)
	}

	value, err := phplist.NewAdminAttributeValue(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing admin attribute value: %w", err)
	}

	return value, nil
}

// SetValue implements phplist.AdminAttributesClient.SetValue.
func (c *AdminAttributesClient) SetValue(ctx context.Context, administratorID, definitionID int, value string) (*phplist.AdminAttributeValue, error) {
	payload := phplist.NewPayload().Set("value", value)

	resp, err := c.httpClient.Put(ctx, valuePath("administrators", administratorID, definitionID), payload)
	if err != nil {
		return nil, fmt.Errorf("setting admin attribute value: %w", err)
	}

	result, err := phplist.NewAdminAttributeValue(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing admin attribute value response: %w", err)
	}

	return result, nil
}

// DeleteValue implements phplist.AdminAttributesClient.DeleteValue.
func (c *AdminAttributesClient) DeleteValue(ctx context.Context, administratorID, definitionID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, valuePath("administrators", administratorID, definitionID), "admin attribute value")
}

// SubscriberAttributesClient implements phplist.SubscriberAttributesClient.
type SubscriberAttributesClient struct {
	attributeDefinitions
}

// NewSubscriberAttributesClient creates a new subscriber attributes client.
func NewSubscriberAttributesClient(httpClient *http.Client) *SubscriberAttributesClient {
	return &SubscriberAttributesClient{
		attributeDefinitions: attributeDefinitions{
			httpClient: httpClient,
			basePath:   "subscribers/attributes",
		},
	}
}

// ListValues implements phplist.SubscriberAttributesClient.ListValues.
func (c *SubscriberAttributesClient) ListValues(ctx context.Context, subscriberID int, opts *phplist.ListOptions) (*phplist.Collection[*phplist.SubscriberAttributeValue], error) {
	path := "subscribers/" + strconv.Itoa(subscriberID) + "/attributes"

	return getCollection(ctx, c.httpClient, path, opts, phplist.NewSubscriberAttributeValue, "subscriber attribute values")
}

// GetValue implements phplist.SubscriberAttributesClient.GetValue.
func (c *SubscriberAttributesClient) GetValue(ctx context.Context, subscriberID, definitionID int) (*phplist.SubscriberAttributeValue, error) {
	resp, err := c.httpClient.Get(ctx, valuePath("subscribers", subscriberID, definitionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscriber attribute value: %w", err)
	}

	value, err := phplist.NewSubscriberAttributeValue(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscriber attribute value: %w", err)
	}

	return value, nil
}

// SetValue implements phplist.SubscriberAttributesClient.SetValue.
func (c *SubscriberAttributesClient) SetValue(ctx context.Context, subscriberID, definitionID int, value string) (*phplist.SubscriberAttributeValue, error) {
	payload := phplist.NewPayload().Set("value", value)

	resp, err := c.httpClient.Put(ctx, valuePath("subscribers", subscriberID, definitionID), payload)
	if err != nil {
		return nil, fmt.Errorf("setting subscriber attribute value: %w", err)
	}

	result, err := phplist.NewSubscriberAttributeValue(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscriber attribute value response: %w", err)
	}

	return result, nil
}

// DeleteValue implements phplist.SubscriberAttributesClient.DeleteValue.
func (c *SubscriberAttributesClient) DeleteValue(ctx context.Context, subscriberID, definitionID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, valuePath("subscribers", subscriberID, definitionID), "subscriber attribute value")
}
