package commands

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "yes", formatBool(true))
	assert.Equal(t, "no", formatBool(false))

	assert.Equal(t, NotAvailable, formatTime(nil))

	ts := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-02 10:30", formatTime(&ts))

	assert.Equal(t, "", formatOptString(nil))

	value := "draft"
	assert.Equal(t, "draft", formatOptString(&value))
}

func TestListOptionsFromFlags(t *testing.T) {
	values := listOptionsFromFlags(100, 25).ToValues()
	assert.Equal(t, "100", values.Get("after_id"))
	assert.Equal(t, "25", values.Get("limit"))

	values = listOptionsFromFlags(0, 0).ToValues()
	assert.Empty(t, values.Get("after_id"))
	assert.Empty(t, values.Get("limit"))
}

func TestCreateClient_RequiresConfiguration(t *testing.T) {
	viper.Reset()

	_, err := createClient()
	require.ErrorIs(t, err, ErrServerRequired)

	viper.Set("server", "https://lists.example.com")

	_, err = createClient()
	require.ErrorIs(t, err, ErrNotLoggedIn)

	viper.Set("session", "3jk1lebtvf8930gi8s44kq0q10h1u0q4")

	client, err := createClient()
	require.NoError(t, err)
	assert.Equal(t, "3jk1lebtvf8930gi8s44kq0q10h1u0q4", client.SessionKey())

	viper.Reset()
}

func TestIsConfigKey(t *testing.T) {
	assert.True(t, isConfigKey("server"))
	assert.True(t, isConfigKey("output"))
	assert.False(t, isConfigKey("session"))
	assert.False(t, isConfigKey("nonsense"))
}
