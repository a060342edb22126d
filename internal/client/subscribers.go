package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// SubscribersClient implements phplist.SubscribersClient.
type SubscribersClient struct {
	httpClient *http.Client
}

// NewSubscribersClient creates a new subscribers client.
func NewSubscribersClient(httpClient *http.Client) *SubscribersClient {
	return &SubscribersClient{
		httpClient: httpClient,
	}
}

// List implements phplist.SubscribersClient.List.
func (c *SubscribersClient) List(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.Subscriber], error) {
	return getCollection(ctx, c.httpClient, "subscribers", opts, phplist.NewSubscriber, "subscribers")
}

// Get implements phplist.SubscribersClient.Get.
func (c *SubscribersClient) Get(ctx context.Context, subscriberID int) (*phplist.Subscriber, error) {
	resp, err := c.httpClient.Get(ctx, "subscribers/"+strconv.Itoa(subscriberID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscriber: %w", err)
	}

	subscriber, err := phplist.NewSubscriber(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscriber: %w", err)
	}

	return subscriber, nil
}

// Create implements phplist.SubscribersClient.Create.
func (c *SubscribersClient) Create(ctx context.Context, request *phplist.CreateSubscriberRequest) (*phplist.Subscriber, error) {
	resp, err := c.httpClient.Post(ctx, "subscribers", request.Payload())
	if err != nil {
		return nil, fmt.Errorf("creating subscriber: %w", err)
	}

	subscriber, err := phplist.NewSubscriber(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscriber response: %w", err)
	}

	return subscriber, nil
}

// Update implements phplist.SubscribersClient.Update.
func (c *SubscribersClient) Update(ctx context.Context, subscriberID int, request *phplist.UpdateSubscriberRequest) (*phplist.Subscriber, error) {
	resp, err := c.httpClient.Put(ctx, "subscribers/"+strconv.Itoa(subscriberID), request.Payload())
	if err != nil {
		return nil, fmt.Errorf("updating subscriber: %w", err)
	}

	subscriber, err := phplist.NewSubscriber(responseObject(resp))
	if err != nil {
		return nil, fmt.Errorf("parsing subscriber response: %w", err)
	}

	return subscriber, nil
}

// Delete implements phplist.SubscribersClient.Delete.
func (c *SubscribersClient) Delete(ctx context.Context, subscriberID int) (*phplist.DeleteResult, error) {
	return deleteResource(ctx, c.httpClient, "subscribers/"+strconv.Itoa(subscriberID), "subscriber")
}

// History implements phplist.SubscribersClient.History.
func (c *SubscribersClient) History(ctx context.Context, subscriberID int, request *phplist.SubscriberHistoryRequest) (*phplist.Collection[*phplist.SubscriberHistory], error) {
	path := "subscribers/" + strconv.Itoa(subscriberID) + "/history"

	query := make(map[string][]string)

	if request != nil {
		payload := request.Payload()
		for _, key := range payload.Keys() {
			value, _ := payload.Get(key)
			query[key] = []string{fmt.Sprint(value)}
		}
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing subscriber history: %w", err)
	}

	collection, err := phplist.HydrateCollection(resp.Data, phplist.NewSubscriberHistory)
	if err != nil {
		return nil, fmt.Errorf("parsing subscriber history: %w", err)
	}

	return collection, nil
}

// Export implements phplist.SubscribersClient.Export. The response is
// raw CSV rather than JSON.
func (c *SubscribersClient) Export(ctx context.Context, request *phplist.ExportSubscribersRequest) ([]byte, error) {
	if request == nil {
		request = &phplist.ExportSubscribersRequest{}
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   "subscribers/export",
		Body:   request.Payload(),
		Raw:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("exporting subscribers: %w", err)
	}

	return resp.Body, nil
}

// Import implements phplist.SubscribersClient.Import.
func (c *SubscribersClient) Import(ctx context.Context, request *phplist.ImportSubscribersRequest) (*phplist.DeleteResult, error) {
	if request == nil || request.File == nil {
		return nil, phplist.ErrImportFileRequired
	}

	filename := request.Filename
	if filename == "" {
		filename = "subscribers.csv"
	}

	resp, err := c.httpClient.PostMultipart(ctx, "subscribers/import", request.Payload(), "file", filename, request.File)
	if err != nil {
		return nil, fmt.Errorf("importing subscribers: %w", err)
	}

	return phplist.NewDeleteResult(responseObject(resp)), nil
}

// Confirm implements phplist.SubscribersClient.Confirm. The server
// replies with plain text.
func (c *SubscribersClient) Confirm(ctx context.Context, uniqueID string) (string, error) {
	resp, err := c.httpClient.GetRaw(ctx, "subscribers/confirm/"+uniqueID, nil)
	if err != nil {
		return "", fmt.Errorf("confirming subscriber: %w", err)
	}

	return string(resp.Body), nil
}
