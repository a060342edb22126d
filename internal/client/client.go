// Package client implements the phplist.Client interface on top of the
// internal HTTP transport.
package client

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// Client implements the phplist.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     phplist.Logger

	mu      sync.Mutex
	session *phplist.Session

	// Resource clients
	administrators       phplist.AdministratorsClient
	adminAttributes      phplist.AdminAttributesClient
	subscribers          phplist.SubscribersClient
	subscriberAttributes phplist.SubscriberAttributesClient
	lists                phplist.ListsClient
	listMessages         phplist.ListMessagesClient
	campaigns            phplist.CampaignsClient
	templates            phplist.TemplatesClient
	subscribePages       phplist.SubscribePagesClient
	statistics           phplist.StatisticsClient
	blacklist            phplist.BlacklistClient
	bounces              phplist.BouncesClient
	passwordReset        phplist.PasswordResetClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *phplist.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := 30 * time.Second

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new phpList API client.
func New(config *phplist.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, phplist.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	if config.SessionKey != "" {
		client.SetSession(config.SessionKey)
	}

	client.initializeResourceClients()

	return client, nil
}

// Login implements phplist.Client.Login. A successful response without
// a session key is treated as an authentication failure.
func (c *Client) Login(ctx context.Context, loginName, password string) (*phplist.Session, error) {
	payload := phplist.NewPayload().
		Set("loginName", loginName).
		Set("password", password)

	resp, err := c.httpClient.Post(ctx, "sessions", payload)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	data := responseObject(resp)
	if data.String("key") == "" {
		authErr := phplist.NewAuthenticationError("Session key not found in response", resp.StatusCode)
		authErr.Err = phplist.ErrSessionKeyMissing

		return nil, authErr
	}

	session := phplist.NewSession(data)

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	c.httpClient.SetSession(session.Key)

	if c.logger != nil {
		c.logger.Info("Logged in", map[string]interface{}{"session_id": session.ID})
	}

	return session, nil
}

// Logout implements phplist.Client.Logout. Without an active session it
// fails locally and never touches the network. A session installed via
// SetSession has no server-side ID to delete and is only discarded
// locally.
func (c *Client) Logout(ctx context.Context) error {
	if c.httpClient.SessionKey() == "" {
		return phplist.NewAuthenticationError("Not authenticated", 0)
	}

	c.mu.Lock()
	session := c.session
	c.session = nil
	c.mu.Unlock()

	defer c.httpClient.ClearSession()

	if session == nil || session.ID == 0 {
		return nil
	}

	if _, err := c.httpClient.Delete(ctx, "sessions/"+strconv.Itoa(session.ID)); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// SetSession implements phplist.Client.SetSession.
func (c *Client) SetSession(key string) {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()

	c.httpClient.SetSession(key)
}

// SessionKey implements phplist.Client.SessionKey.
func (c *Client) SessionKey() string {
	return c.httpClient.SessionKey()
}

// Resource client accessors

// Administrators implements phplist.Client.Administrators.
func (c *Client) Administrators() phplist.AdministratorsClient {
	return c.administrators
}

// AdminAttributes implements phplist.Client.AdminAttributes.
func (c *Client) AdminAttributes() phplist.AdminAttributesClient {
	return c.adminAttributes
}

// Subscribers implements phplist.Client.Subscribers.
func (c *Client) Subscribers() phplist.SubscribersClient {
	return c.subscribers
}

// SubscriberAttributes implements phplist.Client.SubscriberAttributes.
func (c *Client) SubscriberAttributes() phplist.SubscriberAttributesClient {
	return c.subscriberAttributes
}

// Lists implements phplist.Client.Lists.
func (c *Client) Lists() phplist.ListsClient {
	return c.lists
}

// ListMessages implements phplist.Client.ListMessages.
func (c *Client) ListMessages() phplist.ListMessagesClient {
	return c.listMessages
}

// Campaigns implements phplist.Client.Campaigns.
func (c *Client) Campaigns() phplist.CampaignsClient {
	return c.campaigns
}

// Templates implements phplist.Client.Templates.
func (c *Client) Templates() phplist.TemplatesClient {
	return c.templates
}

// SubscribePages implements phplist.Client.SubscribePages.
func (c *Client) SubscribePages() phplist.SubscribePagesClient {
	return c.subscribePages
}

// Statistics implements phplist.Client.Statistics.
func (c *Client) Statistics() phplist.StatisticsClient {
	return c.statistics
}

// Blacklist implements phplist.Client.Blacklist.
func (c *Client) Blacklist() phplist.BlacklistClient {
	return c.blacklist
}

// Bounces implements phplist.Client.Bounces.
func (c *Client) Bounces() phplist.BouncesClient {
	return c.bounces
}

// PasswordReset implements phplist.Client.PasswordReset.
func (c *Client) PasswordReset() phplist.PasswordResetClient {
	return c.passwordReset
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.administrators = NewAdministratorsClient(c.httpClient)
	c.adminAttributes = NewAdminAttributesClient(c.httpClient)
	c.subscribers = NewSubscribersClient(c.httpClient)
	c.subscriberAttributes = NewSubscriberAttributesClient(c.httpClient)
	c.lists = NewListsClient(c.httpClient)
	c.listMessages = NewListMessagesClient(c.httpClient)
	c.campaigns = NewCampaignsClient(c.httpClient)
	c.templates = NewTemplatesClient(c.httpClient)
	c.subscribePages = NewSubscribePagesClient(c.httpClient)
	c.statistics = NewStatisticsClient(c.httpClient)
	c.blacklist = NewBlacklistClient(c.httpClient)
	c.bounces = NewBouncesClient(c.httpClient)
	c.passwordReset = NewPasswordResetClient(c.httpClient)
}

// loggerAdapter adapts phplist.Logger to http.Logger.
type loggerAdapter struct {
	logger phplist.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
