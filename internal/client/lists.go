package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// ListsClient implements phplist.ListsClient.
type ListsClient struct {
	httpClient *http.Client
}

// NewListsClient creates a new lists client.
func NewListsClient(httpClient *http.Client) *ListsClient {
	return &ListsClient{
		httpClient: httpClient,
	}
}

// List implements phplist.ListsClient.List.
func (c *ListsClient) List(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.SubscriberList], error) {
	return getCollection(ctx, c.httpClient, "lists", opts, phplist.NewSubscriberList, "lists")
}

// Get implements phplist.ListsClient.Get.
func (c *ListsClient) Get(ctx context.Context, listID int) (*phplist.SubscriberList, error) {
	resp, err := c.httpClient.Get(ctx, "lists/"+strconv.Itoa(listID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting list: %w", err)
	}

	list, err := phplist.NewSubscriberList(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing list: %w", err)
	}

	return list, nil
}

// Create implements phplist.ListsClient.Create.
func (c *ListsClient) Create(ctx context.Context, request *phplist.CreateSubscriberListRequest) (*phplist.SubscriberList, error) {
	resp, err := c.httpClient.Post(ctx, "lists", request.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}

	list, err := phplist.NewSubscriberList(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return list, nil
}

// Delete implements phplist.ListsClient.Delete.
func (c *ListsClient) Delete(ctx context.Context, listID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, "lists/"+strconv.Itoa(listID), "list")
}

// Members implements phplist.ListsClient.Members.
func (c *ListsClient) Members(ctx context.Context, listID int, opts *phplist.ListOptions) (*phplist.Collection[*phplist.Subscriber], error) {
	path := "lists/" + strconv.Itoa(listID) + "/subscribers"

	return getCollection(ctx, c.httpClient, path, opts, phplist.NewSubscriber, "list members")
}

// CountMembers implements phplist.ListsClient.CountMembers.
func (c *ListsClient) CountMembers(ctx context.Context, listID int) (int, error) {
	resp, err := c.httpClient.Get(ctx, "lists/"+strconv.Itoa(listID)+"/subscribers/count", nil)
	if err != nil {
		return 0, fmt.Errorf("counting list members: %w", err)
	}

	return responseObject(resp).Int("subscribers_count"), nil
}

// AddSubscriber implements phplist.ListsClient.AddSubscriber.
func (c *ListsClient) AddSubscriber(ctx context.Context, listID, subscriberID int) (*phplist.Subscription, error) {
	path := "lists/" + strconv.Itoa(listID) + "/subscribers/" + strconv.Itoa(subscriberID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("adding subscriber to list: %w", err)
	}

	subscription, err := phplist.NewSubscription(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscription: %w", err)
	}

	return subscription, nil
}

// RemoveSubscriber implements phplist.ListsClient.RemoveSubscriber.
func (c *ListsClient) RemoveSubscriber(ctx context.Context, listID, subscriberID int) (*phplist.DeleteResult, error) {
	path := "lists/" + strconv.Itoa(listID) + "/subscribers/" + strconv.Itoa(subscriberID)

	return deleteResource(ctx, c.httpClient, path, "list subscription")
}
