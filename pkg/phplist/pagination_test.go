package phplist_test

import (
	"encoding/json"
	"testing"

	"github.com/phplist/go-client/pkg/phplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, raw string) any {
	t.Helper()

	var payload any

	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	return payload
}

func hydrateID(obj phplist.Object) (int, error) {
	return obj.Int("id"), nil
}

func TestHydrateCollection_NestedEnvelope(t *testing.T) {
	t.Parallel()

	payload := decodePayload(t, `{
		"pagination": {"total": 100, "limit": 2, "has_more": true, "next_cursor": 12},
		"items": [{"id": 11}, {"id": 12}]
	}`)

	collection, err := phplist.HydrateCollection(payload, hydrateID)
	require.NoError(t, err)

	assert.Equal(t, []int{11, 12}, collection.Items)
	assert.Equal(t, 100, collection.Pagination.Total)
	assert.Equal(t, 2, collection.Pagination.Limit)
	assert.True(t, collection.Pagination.HasMore)
	require.NotNil(t, collection.Pagination.NextCursor)
	assert.Equal(t, 12, *collection.Pagination.NextCursor)
}

func TestHydrateCollection_FlatEnvelope(t *testing.T) {
	t.Parallel()

	payload := decodePayload(t, `{
		"total": 3, "limit": 10, "has_more": false,
		"items": [{"id": 1}, {"id": 2}, {"id": 3}]
	}`)

	collection, err := phplist.HydrateCollection(payload, hydrateID)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, collection.Items)
	assert.Equal(t, 3, collection.Pagination.Total)
	assert.Equal(t, 10, collection.Pagination.Limit)
	assert.False(t, collection.Pagination.HasMore)
	assert.Nil(t, collection.Pagination.NextCursor)
}

func TestHydrateCollection_BareArray(t *testing.T) {
	t.Parallel()

	payload := decodePayload(t, `[{"id": 7}, {"id": 8}]`)

	collection, err := phplist.HydrateCollection(payload, hydrateID)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 8}, collection.Items)
	// No envelope: total defaults to the item count, everything else to
	// its zero value.
	assert.Equal(t, 2, collection.Pagination.Total)
	assert.Equal(t, 0, collection.Pagination.Limit)
	assert.False(t, collection.Pagination.HasMore)
	assert.Nil(t, collection.Pagination.NextCursor)
}

func TestHydrateCollection_EmptyAndUnknown(t *testing.T) {
	t.Parallel()

	t.Run("empty items", func(t *testing.T) {
		t.Parallel()

		collection, err := phplist.HydrateCollection(decodePayload(t, `{"items": []}`), hydrateID)
		require.NoError(t, err)
		assert.Empty(t, collection.Items)
		assert.Equal(t, 0, collection.Pagination.Total)
	})

	t.Run("scalar payload", func(t *testing.T) {
		t.Parallel()

		collection, err := phplist.HydrateCollection("unexpected", hydrateID)
		require.NoError(t, err)
		assert.Empty(t, collection.Items)
	})
}

func TestHydrateCollection_ItemError(t *testing.T) {
	t.Parallel()

	payload := decodePayload(t, `{"items": [
		{"id": 1, "login_name": "a", "email": "a@example.com", "created_at": "2024-01-01T00:00:00+00:00"},
		{"id": 2, "login_name": "b", "email": "b@example.com"}
	]}`)

	_, err := phplist.HydrateCollection(payload, func(obj phplist.Object) (*phplist.Administrator, error) {
		return phplist.NewAdministrator(obj)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, phplist.ErrMissingField)
	assert.Contains(t, err.Error(), "item 1")
}

func TestListOptions_ToValues(t *testing.T) {
	t.Parallel()

	assert.Empty(t, phplist.NewListOptions().ToValues())

	values := phplist.NewListOptions().WithAfterID(42).WithLimit(25).ToValues()
	assert.Equal(t, "42", values.Get("after_id"))
	assert.Equal(t, "25", values.Get("limit"))

	var nilOpts *phplist.ListOptions

	assert.Empty(t, nilOpts.ToValues())
}
