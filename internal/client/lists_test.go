package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/lists", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 2,
			"items": []any{
				map[string]any{
					"id": 1, "name": "Newsletter", "public": true,
					"created_at": "2016-06-22T15:01:17+00:00",
				},
				map[string]any{
					"id": 2, "name": "Announcements", "public": false,
					"description": "Product announcements",
					"created_at":  "2018-01-05T12:00:00+00:00",
				},
			},
		})
	}))
	defer server.Close()

	lists := NewListsClient(internalhttp.NewClient(server.URL))

	list, err := lists.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Newsletter", list.Items[0].Name)
	assert.True(t, list.Items[0].Public)
	require.NotNil(t, list.Items[1].Description)
	assert.Equal(t, "Product announcements", *list.Items[1].Description)
}

func TestListsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/lists", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Weekly digest","public":true,"list_position":12}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 3, "name": "Weekly digest", "public": true,
			"list_position": 12, "created_at": "2026-09-01T09:00:00+00:00",
		})
	}))
	defer server.Close()

	lists := NewListsClient(internalhttp.NewClient(server.URL))

	public := true
	position := 12

	list, err := lists.Create(context.Background(), &phplist.CreateSubscriberListRequest{
		Name:         "Weekly digest",
		Public:       &public,
		ListPosition: &position,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, list.ID)
	require.NotNil(t, list.ListPosition)
	assert.Equal(t, 12, *list.ListPosition)
}

func TestListsClient_Members(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/lists/2/subscribers", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 1,
			"items": []any{
				map[string]any{"id": 101, "email": "ada@example.com", "confirmed": true},
			},
		})
	}))
	defer server.Close()

	lists := NewListsClient(internalhttp.NewClient(server.URL))

	members, err := lists.Members(context.Background(), 2, phplist.NewListOptions().WithLimit(50))
	require.NoError(t, err)
	require.Len(t, members.Items, 1)
	assert.Equal(t, "ada@example.com", members.Items[0].Email)
}

func TestListsClient_CountMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/lists/2/subscribers/count", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{"subscribers_count": 1200})
	}))
	defer server.Close()

	lists := NewListsClient(internalhttp.NewClient(server.URL))

	count, err := lists.CountMembers(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1200, count)
}

func TestListsClient_AddSubscriber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/lists/2/subscribers/101", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"subscriber": map[string]any{
				"id": 101, "email": "ada@example.com", "confirmed": true,
			},
			"subscriber_list": map[string]any{
				"id": 2, "name": "Announcements",
				"created_at": "2018-01-05T12:00:00+00:00",
			},
			"subscription_date": "2026-09-01T09:15:00+00:00",
		})
	}))
	defer server.Close()

	lists := NewListsClient(internalhttp.NewClient(server.URL))

	subscription, err := lists.AddSubscriber(context.Background(), 2, 101)
	require.NoError(t, err)
	assert.Equal(t, 101, subscription.Subscriber.ID)
	assert.Equal(t, "Announcements", subscription.SubscriberList.Name)
	assert.Equal(t, 2026, subscription.SubscriptionDate.Year())
}

func TestListsClient_RemoveSubscriber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/lists/2/subscribers/101", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	lists := NewListsClient(internalhttp.NewClient(server.URL))

	result, err := lists.RemoveSubscriber(context.Background(), 2, 101)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestListsClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "There is no list with that ID."})
	}))
	defer server.Close()

	lists := NewListsClient(internalhttp.NewClient(server.URL))

	_, err := lists.Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, phplist.IsNotFound(err))
}
