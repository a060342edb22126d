package client

import (
	"context"
	"fmt"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// responseObject returns the decoded response body as an Object,
// degrading to an empty one for non-object payloads.
func responseObject(resp *http.Response) phplist.Object {
	if object, ok := phplist.AsObject(resp.Data); ok {
		return object
	}

	return phplist.Object{}
}

// getCollection fetches a paginated listing and hydrates it. The what
// argument names the resource in error messages.
func getCollection[T any](ctx context.Context, httpClient *http.Client, path string, opts *phplist.ListOptions, hydrate phplist.HydrateFunc[T], what string) (*phplist.Collection[T], error) {
	resp, err := httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	collection, err := phplist.HydrateCollection(resp.Data, hydrate)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", what, err)
	}

	return collection, nil
}

// deleteResource performs a DELETE and hydrates the result envelope.
func deleteResource(ctx context.Context, httpClient *http.Client, path, what string) (*phplist.DeleteResult, error) {
	resp, err := httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", what, err)
	}

	return phplist.NewDeleteResult(responseObject(resp)), nil
}
