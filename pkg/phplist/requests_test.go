package phplist_test

import (
	"encoding/json"
	"testing"

	"github.com/phplist/go-client/pkg/phplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalPayload(t *testing.T, request phplist.Request) string {
	t.Helper()

	data, err := json.Marshal(request.Payload())
	require.NoError(t, err)

	return string(data)
}

func TestCreateAdministratorRequest_Payload(t *testing.T) {
	t.Parallel()

	request := &phplist.CreateAdministratorRequest{
		LoginName: "admin",
		Password:  "secret",
		Email:     "admin@example.com",
		SuperUser: false,
	}

	// SuperUser false is an explicit value, not an absent field.
	assert.Equal(t,
		`{"login_name":"admin","password":"secret","email":"admin@example.com","super_user":false}`,
		marshalPayload(t, request))
}

func TestUpdateAdministratorRequest_Payload(t *testing.T) {
	t.Parallel()

	email := "new@example.com"
	superUser := false

	request := &phplist.UpdateAdministratorRequest{
		Email:     &email,
		SuperUser: &superUser,
	}

	assert.Equal(t, `{"email":"new@example.com","super_user":false}`, marshalPayload(t, request))

	assert.Equal(t, `{}`, marshalPayload(t, &phplist.UpdateAdministratorRequest{}))
}

func TestUpdateSubscriberRequest_Payload(t *testing.T) {
	t.Parallel()

	blacklisted := false
	extra := ""

	request := &phplist.UpdateSubscriberRequest{
		Email:          "user@example.com",
		Blacklisted:    &blacklisted,
		AdditionalData: &extra,
	}

	assert.Equal(t,
		`{"email":"user@example.com","blacklisted":false,"additional_data":""}`,
		marshalPayload(t, request))
}

func TestSubscriberHistoryRequest_Payload(t *testing.T) {
	t.Parallel()

	limit := 5
	summary := "subscription"

	request := &phplist.SubscriberHistoryRequest{
		Limit:   &limit,
		Summary: &summary,
	}

	payload := request.Payload()

	// The wire key keeps the server's historical misspelling.
	value, ok := payload.Get("summery")
	require.True(t, ok)
	assert.Equal(t, "subscription", value)

	_, ok = payload.Get("summary")
	assert.False(t, ok)
}

func TestExportSubscribersRequest_Defaults(t *testing.T) {
	t.Parallel()

	payload := (&phplist.ExportSubscribersRequest{}).Payload()

	dateType, ok := payload.Get("dateType")
	require.True(t, ok)
	assert.Equal(t, "any", dateType)

	columns, ok := payload.Get("columns")
	require.True(t, ok)
	assert.Equal(t, phplist.DefaultExportColumns, columns)

	// An explicit empty column list overrides the default.
	custom := (&phplist.ExportSubscribersRequest{DateType: "signup", Columns: []string{"id", "email"}}).Payload()
	columns, _ = custom.Get("columns")
	assert.Equal(t, []string{"id", "email"}, columns)
}

func TestCreateCampaignRequest_Payload(t *testing.T) {
	t.Parallel()

	subject := "March news"
	status := "draft"
	templateID := 4

	request := &phplist.CreateCampaignRequest{
		Content:    &phplist.CampaignContentRequest{Subject: &subject},
		Metadata:   &phplist.CampaignMetadataRequest{Status: &status},
		TemplateID: &templateID,
	}

	assert.Equal(t,
		`{"content":{"subject":"March news"},"metadata":{"status":"draft"},"template_id":4}`,
		marshalPayload(t, request))
}

func TestUpdateCampaignRequest_EmptySections(t *testing.T) {
	t.Parallel()

	// Nil sections stay off the wire so the server leaves them alone.
	assert.Equal(t, `{}`, marshalPayload(t, &phplist.UpdateCampaignRequest{}))
}

func TestCreateTemplateRequest_Payload(t *testing.T) {
	t.Parallel()

	content := "<html>[CONTENT]</html>"
	checkLinks := true

	request := &phplist.CreateTemplateRequest{
		Title:      "Monthly digest",
		Content:    &content,
		CheckLinks: &checkLinks,
	}

	assert.Equal(t,
		`{"title":"Monthly digest","content":"<html>[CONTENT]</html>","check_links":true}`,
		marshalPayload(t, request))
}

func TestUpsertBounceRegexRequest_Payload(t *testing.T) {
	t.Parallel()

	action := "deleteuserandbounce"

	request := &phplist.UpsertBounceRegexRequest{
		Regex:  "user unknown",
		Action: &action,
	}

	assert.Equal(t, `{"regex":"user unknown","action":"deleteuserandbounce"}`, marshalPayload(t, request))
}
