package phplist

import (
	"fmt"
	"net/url"
	"strconv"
)

// CursorPagination carries the cursor-based pagination metadata of a
// collection response.
type CursorPagination struct {
	Total      int
	Limit      int
	HasMore    bool
	NextCursor *int
}

// Collection is an ordered page of entities plus pagination metadata.
type Collection[T any] struct {
	Items      []T
	Pagination CursorPagination
}

// HydrateFunc constructs one entity from a decoded wire object.
type HydrateFunc[T any] func(Object) (T, error)

// HydrateCollection builds a typed collection from a raw response
// payload, hydrating each item in the order received.
//
// Two envelope families are accepted without the caller knowing which
// one the server used: an object payload with an "items" array and
// pagination metadata either nested under "pagination" or flat at the
// top level, or a bare array payload with no metadata at all. Absent
// metadata defaults to total = item count, limit = 0, hasMore = false
// and no next cursor.
func HydrateCollection[T any](payload any, hydrate HydrateFunc[T]) (*Collection[T], error) {
	rawItems, meta := locateItems(payload)

	collection := &Collection[T]{
		Items:      make([]T, 0, len(rawItems)),
		Pagination: hydratePagination(meta, len(rawItems)),
	}

	for i, raw := range rawItems {
		object, ok := AsObject(raw)
		if !ok {
			object = Object{}
		}

		item, err := hydrate(object)
		if err != nil {
			return nil, fmt.Errorf("hydrating collection item %d: %w", i, err)
		}

		collection.Items = append(collection.Items, item)
	}

	return collection, nil
}

// locateItems extracts the raw item list and the object holding
// pagination metadata from either envelope shape.
func locateItems(payload any) ([]any, Object) {
	switch p := payload.(type) {
	case []any:
		return p, nil
	case Object:
		return p.List("items"), p
	case map[string]any:
		return Object(p).List("items"), Object(p)
	default:
		return nil, nil
	}
}

func hydratePagination(meta Object, itemCount int) CursorPagination {
	pagination := CursorPagination{Total: itemCount}

	if meta == nil {
		return pagination
	}

	// Prefer the nested pagination object; fall back to flat top-level
	// keys for older response shapes.
	if nested := meta.Object("pagination"); nested != nil {
		meta = nested
	}

	if meta.Has("total") {
		pagination.Total = meta.Int("total")
	}

	pagination.Limit = meta.Int("limit")
	pagination.HasMore = meta.Bool("has_more")
	pagination.NextCursor = meta.OptInt("next_cursor")

	return pagination
}

// ListOptions carries the cursor pagination parameters accepted by
// collection endpoints.
type ListOptions struct {
	// AfterID is the cursor: only items after this ID are returned.
	AfterID *int
	// Limit is the maximum number of items per page. Zero means the
	// server default.
	Limit int
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithAfterID sets the pagination cursor.
func (o *ListOptions) WithAfterID(afterID int) *ListOptions {
	o.AfterID = &afterID

	return o
}

// WithLimit sets the page size.
func (o *ListOptions) WithLimit(limit int) *ListOptions {
	o.Limit = limit

	return o
}

// ToValues converts the options to URL query values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.AfterID != nil {
		values.Set("after_id", strconv.Itoa(*o.AfterID))
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	return values
}
