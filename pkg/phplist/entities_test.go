package phplist_test

import (
	"testing"
	"time"

	"github.com/phplist/go-client/pkg/phplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Parallel()

	session := phplist.NewSession(phplist.Object{
		"id":          float64(87),
		"key":         "2983weiujfewojf",
		"expiry_date": "2024-03-01T10:30:00+00:00",
	})

	assert.Equal(t, 87, session.ID)
	assert.Equal(t, "2983weiujfewojf", session.Key)
	require.NotNil(t, session.Expiry)
	assert.Equal(t, 2024, session.Expiry.Year())

	bare := phplist.NewSession(phplist.Object{"key": "abc"})
	assert.Nil(t, bare.Expiry)
}

func TestNewAdministrator(t *testing.T) {
	t.Parallel()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()

		admin, err := phplist.NewAdministrator(phplist.Object{
			"id":         float64(1),
			"login_name": "admin",
			"email":      "admin@example.com",
			"super_user": "1",
			"created_at": "2017-06-22T15:01:17+00:00",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, admin.ID)
		assert.Equal(t, "admin", admin.LoginName)
		assert.Equal(t, "admin@example.com", admin.Email)
		assert.True(t, admin.SuperUser)
		assert.Equal(t, 2017, admin.CreatedAt.Year())
	})

	t.Run("missing created_at", func(t *testing.T) {
		t.Parallel()

		_, err := phplist.NewAdministrator(phplist.Object{
			"id":         float64(1),
			"login_name": "admin",
		})
		require.ErrorIs(t, err, phplist.ErrMissingField)
		assert.Contains(t, err.Error(), "created_at")
	})

	t.Run("empty created_at", func(t *testing.T) {
		t.Parallel()

		_, err := phplist.NewAdministrator(phplist.Object{
			"id":         float64(1),
			"created_at": "",
		})
		require.ErrorIs(t, err, phplist.ErrMissingField)
	})
}

func TestNewSubscriber(t *testing.T) {
	t.Parallel()

	subscriber, err := phplist.NewSubscriber(phplist.Object{
		"id":           float64(12),
		"email":        "user@example.com",
		"created_at":   "2022-01-10T09:00:00+00:00",
		"confirmed":    true,
		"blacklisted":  "0",
		"bounce_count": "2",
		"unique_id":    "69f4e92cf50eafca9627f35704f030f4",
		"html_email":   float64(1),
		"disabled":     false,
		"subscribed_lists": []any{
			map[string]any{"id": float64(2), "name": "Newsletter", "public": true},
			"not-an-object",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 12, subscriber.ID)
	assert.Equal(t, "user@example.com", subscriber.Email)
	require.NotNil(t, subscriber.CreatedAt)
	assert.True(t, subscriber.Confirmed)
	assert.False(t, subscriber.Blacklisted)
	assert.Equal(t, 2, subscriber.BounceCount)
	assert.True(t, subscriber.HTMLEmail)
	require.Len(t, subscriber.SubscribedLists, 1)
	assert.Equal(t, "Newsletter", subscriber.SubscribedLists[0].Name)

	minimal, err := phplist.NewSubscriber(phplist.Object{"email": "a@example.com"})
	require.NoError(t, err)
	assert.Nil(t, minimal.CreatedAt)
	assert.False(t, minimal.Confirmed)
	assert.Empty(t, minimal.SubscribedLists)
}

func TestNewSubscriberList(t *testing.T) {
	t.Parallel()

	list, err := phplist.NewSubscriberList(phplist.Object{
		"id":          float64(2),
		"name":        "Newsletter",
		"created_at":  "2016-06-22T15:01:17+00:00",
		"description": "General announcements",
		"public":      "1",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, list.ID)
	assert.Equal(t, "Newsletter", list.Name)
	assert.True(t, list.Public)
	require.NotNil(t, list.Description)
	assert.Equal(t, "General announcements", *list.Description)
	assert.Nil(t, list.Category)

	// Embedded lists often omit the timestamp; it stays zero.
	embedded, err := phplist.NewSubscriberList(phplist.Object{"id": float64(3), "name": "Digest"})
	require.NoError(t, err)
	assert.True(t, embedded.CreatedAt.IsZero())
}

func TestNewSubscription(t *testing.T) {
	t.Parallel()

	subscription, err := phplist.NewSubscription(phplist.Object{
		"subscriber": map[string]any{
			"id":    float64(12),
			"email": "user@example.com",
		},
		"subscriber_list": map[string]any{
			"id":   float64(2),
			"name": "Newsletter",
		},
		"subscription_date": "2024-01-05 12:00:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 12, subscription.Subscriber.ID)
	assert.Equal(t, "Newsletter", subscription.SubscriberList.Name)
	assert.Equal(t, 2024, subscription.SubscriptionDate.Year())

	_, err = phplist.NewSubscription(phplist.Object{
		"subscriber": map[string]any{"id": float64(12)},
	})
	require.ErrorIs(t, err, phplist.ErrMissingField)
}

func TestNewTemplate(t *testing.T) {
	t.Parallel()

	template, err := phplist.NewTemplate(phplist.Object{
		"id":      float64(4),
		"title":   "Monthly digest",
		"content": "<html>[CONTENT]</html>",
		"images":  []any{"logo.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, template.ID)
	assert.Equal(t, "Monthly digest", template.Title)
	require.NotNil(t, template.Content)
	assert.Nil(t, template.Text)
	assert.Equal(t, []string{"logo.png"}, template.Images)
}

func TestNewSubscribePage(t *testing.T) {
	t.Parallel()

	page, err := phplist.NewSubscribePage(phplist.Object{
		"id":     float64(9),
		"title":  "Join us",
		"active": "1",
		"owner": map[string]any{
			"id":         float64(1),
			"login_name": "admin",
			"created_at": "2017-06-22T15:01:17+00:00",
		},
	})
	require.NoError(t, err)

	assert.True(t, page.Active)
	require.NotNil(t, page.Owner)
	assert.Equal(t, "admin", page.Owner.LoginName)

	// An owner that cannot be hydrated degrades to nil instead of
	// failing the page.
	orphan, err := phplist.NewSubscribePage(phplist.Object{
		"id":    float64(10),
		"title": "Broken owner",
		"owner": map[string]any{"id": float64(1)},
	})
	require.NoError(t, err)
	assert.Nil(t, orphan.Owner)
}

func TestNewBounceRegex(t *testing.T) {
	t.Parallel()

	regex, err := phplist.NewBounceRegex(phplist.Object{
		"id":     float64(5),
		"regex":  "user unknown",
		"action": "deleteuserandbounce",
		"count":  float64(42),
	})
	require.NoError(t, err)

	assert.Equal(t, "user unknown", regex.Regex)
	require.NotNil(t, regex.Action)
	assert.Equal(t, "deleteuserandbounce", *regex.Action)
	require.NotNil(t, regex.Count)
	assert.Equal(t, 42, *regex.Count)
	assert.Nil(t, regex.Comment)
}

func TestNewSubscriberHistory(t *testing.T) {
	t.Parallel()

	entry, err := phplist.NewSubscriberHistory(phplist.Object{
		"id":         float64(3),
		"ip":         "203.0.113.7",
		"created_at": "2024-02-01T08:00:00+00:00",
		"summary":    "Subscription confirmed",
		"detail":     "Confirmed via email link",
	})
	require.NoError(t, err)

	assert.Equal(t, "203.0.113.7", entry.IP)
	assert.Equal(t, "Subscription confirmed", entry.Summary)
	require.NotNil(t, entry.CreatedAt)
	assert.Equal(t, time.February, entry.CreatedAt.Month())
}

func TestNewBlacklistStatus(t *testing.T) {
	t.Parallel()

	status, err := phplist.NewBlacklistStatus(phplist.Object{
		"email":       "spam@example.com",
		"blacklisted": true,
		"reason":      "user complaint",
	})
	require.NoError(t, err)

	assert.True(t, status.Blacklisted)
	require.NotNil(t, status.Reason)
	assert.Equal(t, "user complaint", *status.Reason)
	assert.Nil(t, status.AddedAt)
}

func TestNewDeleteResult(t *testing.T) {
	t.Parallel()

	result := phplist.NewDeleteResult(phplist.Object{
		"success":      true,
		"text_message": "Subscriber deleted",
	})

	assert.True(t, result.Success)
	require.NotNil(t, result.Message)
	assert.Equal(t, "Subscriber deleted", *result.Message)

	empty := phplist.NewDeleteResult(phplist.Object{})
	assert.False(t, empty.Success)
	assert.Nil(t, empty.Message)
}
