package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/phplist/go-client/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMessagesClient_CampaignsForList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/lists/2/campaigns", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 1,
			"items": []any{
				map[string]any{
					"id": 42, "unique_id": "0a1b2c3d4e5f60718293a4b5c6d7e8f9",
					"message_content": map[string]any{"subject": "March news"},
				},
			},
		})
	}))
	defer server.Close()

	listMessages := NewListMessagesClient(internalhttp.NewClient(server.URL))

	campaigns, err := listMessages.CampaignsForList(context.Background(), 2, nil)
	require.NoError(t, err)
	require.Len(t, campaigns.Items, 1)
	assert.Equal(t, 42, campaigns.Items[0].ID)
}

func TestListMessagesClient_ListsForCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns/42/lists", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 2,
			"items": []any{
				map[string]any{"id": 1, "name": "Newsletter", "public": true},
				map[string]any{"id": 2, "name": "Announcements", "public": false},
			},
		})
	}))
	defer server.Close()

	listMessages := NewListMessagesClient(internalhttp.NewClient(server.URL))

	lists, err := listMessages.ListsForCampaign(context.Background(), 42, nil)
	require.NoError(t, err)
	require.Len(t, lists.Items, 2)
	assert.Equal(t, "Newsletter", lists.Items[0].Name)
}

func TestListMessagesClient_Associate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns/42/lists/2", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "text_message": "Campaign added to list",
		})
	}))
	defer server.Close()

	listMessages := NewListMessagesClient(internalhttp.NewClient(server.URL))

	result, err := listMessages.Associate(context.Background(), 42, 2)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestListMessagesClient_Dissociate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns/42/lists/2", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	listMessages := NewListMessagesClient(internalhttp.NewClient(server.URL))

	result, err := listMessages.Dissociate(context.Background(), 42, 2)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestListMessagesClient_IsAssociated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns/42/lists/2", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{"is_associated": true})
	}))
	defer server.Close()

	listMessages := NewListMessagesClient(internalhttp.NewClient(server.URL))

	associated, err := listMessages.IsAssociated(context.Background(), 42, 2)
	require.NoError(t, err)
	assert.True(t, associated)
}

func TestListMessagesClient_IsAssociated_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Not found"})
	}))
	defer server.Close()

	listMessages := NewListMessagesClient(internalhttp.NewClient(server.URL))

	associated, err := listMessages.IsAssociated(context.Background(), 42, 9)
	require.NoError(t, err)
	assert.False(t, associated)
}

func TestListMessagesClient_RemoveAllLists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns/42/lists", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	listMessages := NewListMessagesClient(internalhttp.NewClient(server.URL))

	result, err := listMessages.RemoveAllLists(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, result.Success)
}
