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

func TestCampaignsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 1,
			"items": []any{
				map[string]any{
					"id": 42, "unique_id": "0a1b2c3d4e5f60718293a4b5c6d7e8f9",
					"message_content":  map[string]any{"subject": "March news"},
					"message_metadata": map[string]any{"status": "sent", "views": 312},
				},
			},
		})
	}))
	defer server.Close()

	campaigns := NewCampaignsClient(internalhttp.NewClient(server.URL))

	list, err := campaigns.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	campaign := list.Items[0]
	assert.Equal(t, 42, campaign.ID)
	require.NotNil(t, campaign.Content)
	require.NotNil(t, campaign.Content.Subject)
	assert.Equal(t, "March news", *campaign.Content.Subject)
	require.NotNil(t, campaign.Metadata)
	require.NotNil(t, campaign.Metadata.Views)
	assert.Equal(t, 312, *campaign.Metadata.Views)
}

func TestCampaignsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"content": {"subject": "March news", "text": "Hello"},
			"metadata": {"status": "draft"},
			"options": {"from_field": "news@example.com"},
			"template_id": 4
		}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 43, "unique_id": "ffeeddccbbaa99887766554433221100",
			"template":         map[string]any{"id": 4, "title": "Default"},
			"message_content":  map[string]any{"subject": "March news", "text": "Hello"},
			"message_metadata": map[string]any{"status": "draft"},
			"message_options":  map[string]any{"from_field": "news@example.com"},
		})
	}))
	defer server.Close()

	campaigns := NewCampaignsClient(internalhttp.NewClient(server.URL))

	subject := "March news"
	text := "Hello"
	status := "draft"
	from := "news@example.com"
	templateID := 4

	campaign, err := campaigns.Create(context.Background(), &phplist.CreateCampaignRequest{
		Content:    &phplist.CampaignContentRequest{Subject: &subject, Text: &text},
		Metadata:   &phplist.CampaignMetadataRequest{Status: &status},
		Options:    &phplist.CampaignOptionsRequest{FromField: &from},
		TemplateID: &templateID,
	})
	require.NoError(t, err)
	assert.Equal(t, 43, campaign.ID)
	require.NotNil(t, campaign.Template)
	assert.Equal(t, "Default", campaign.Template.Title)
	require.NotNil(t, campaign.Options)
	require.NotNil(t, campaign.Options.FromField)
	assert.Equal(t, "news@example.com", *campaign.Options.FromField)
}

func TestCampaignsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns/43", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"metadata": {"status": "submitted"}}`, string(body))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 43, "unique_id": "ffeeddccbbaa99887766554433221100",
			"message_metadata": map[string]any{"status": "submitted"},
		})
	}))
	defer server.Close()

	campaigns := NewCampaignsClient(internalhttp.NewClient(server.URL))

	status := "submitted"

	campaign, err := campaigns.Update(context.Background(), 43, &phplist.UpdateCampaignRequest{
		Metadata: &phplist.CampaignMetadataRequest{Status: &status},
	})
	require.NoError(t, err)
	require.NotNil(t, campaign.Metadata)
	require.NotNil(t, campaign.Metadata.Status)
	assert.Equal(t, "submitted", *campaign.Metadata.Status)
}

func TestCampaignsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/campaigns/43", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	campaigns := NewCampaignsClient(internalhttp.NewClient(server.URL))

	result, err := campaigns.Delete(context.Background(), 43)
	require.NoError(t, err)
	assert.True(t, result.Success)
}
