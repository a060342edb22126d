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

func TestTemplatesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/templates", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 1,
			"items": []any{
				map[string]any{
					"id": 4, "title": "Default",
					"content": "<html>[CONTENT]</html>",
					"images":  []any{"powered.png"},
				},
			},
		})
	}))
	defer server.Close()

	templates := NewTemplatesClient(internalhttp.NewClient(server.URL))

	list, err := templates.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Default", list.Items[0].Title)
	assert.Equal(t, []string{"powered.png"}, list.Items[0].Images)
}

func TestTemplatesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/templates", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"title": "Spring layout",
			"content": "<html>[CONTENT]</html>",
			"check_links": true
		}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 5, "title": "Spring layout", "content": "<html>[CONTENT]</html>",
		})
	}))
	defer server.Close()

	templates := NewTemplatesClient(internalhttp.NewClient(server.URL))

	content := "<html>[CONTENT]</html>"
	checkLinks := true

	template, err := templates.Create(context.Background(), &phplist.CreateTemplateRequest{
		Title:      "Spring layout",
		Content:    &content,
		CheckLinks: &checkLinks,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, template.ID)
	require.NotNil(t, template.Content)
	assert.Equal(t, "<html>[CONTENT]</html>", *template.Content)
}

func TestTemplatesClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/templates/5", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	templates := NewTemplatesClient(internalhttp.NewClient(server.URL))

	result, err := templates.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, result.Success)
}
