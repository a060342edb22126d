package phplist

import (
	"context"
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/phplist/go-client/pkg/listclient.New to create a client")
)

// AudienceClients provides access to subscriber and list resource clients.
type AudienceClients interface {
	Subscribers() SubscribersClient
	SubscriberAttributes() SubscriberAttributesClient
	Lists() ListsClient
	ListMessages() ListMessagesClient
}

// MessagingClients provides access to campaign-related resource clients.
type MessagingClients interface {
	Campaigns() CampaignsClient
	Templates() TemplatesClient
	SubscribePages() SubscribePagesClient
}

// AdministrationClients provides access to administrator resource clients.
type AdministrationClients interface {
	Administrators() AdministratorsClient
	AdminAttributes() AdminAttributesClient
	PasswordReset() PasswordResetClient
}

// DeliveryClients provides access to delivery and reporting clients.
type DeliveryClients interface {
	Statistics() StatisticsClient
	Blacklist() BlacklistClient
	Bounces() BouncesClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	AudienceClients
	MessagingClients
	AdministrationClients
	DeliveryClients
}

// SessionClient manages the authentication session used by all other
// clients. A session key obtained by Login (or installed by SetSession)
// is sent with every subsequent request until Logout.
type SessionClient interface {
	Login(ctx context.Context, loginName, password string) (*Session, error)
	Logout(ctx context.Context) error
	SetSession(key string)
	SessionKey() string
}

type Client interface {
	SessionClient
	// Composite interfaces for related resource groups
	ResourceClients
}

// AdministratorsClient provides access to administrator accounts.
type AdministratorsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Collection[*Administrator], error)
	Get(ctx context.Context, administratorID int) (*Administrator, error)
	Create(ctx context.Context, request *CreateAdministratorRequest) (*Administrator, error)
	Update(ctx context.Context, administratorID int, request *UpdateAdministratorRequest) (*Administrator, error)
	Delete(ctx context.Context, administratorID int) (*DeleteResult, error)
}

// AdminAttributesClient provides access to administrator attribute
// definitions and per-administrator attribute values.
type AdminAttributesClient interface {
	ListDefinitions(ctx context.Context, opts *ListOptions) (*Collection[*AttributeDefinition], error)
	GetDefinition(ctx context.Context, definitionID int) (*AttributeDefinition, error)
	CreateDefinition(ctx context.Context, request *CreateAttributeDefinitionRequest) (*AttributeDefinition, error)
	UpdateDefinition(ctx context.Context, definitionID int, request *UpdateAttributeDefinitionRequest) (*AttributeDefinition, error)
	DeleteDefinition(ctx context.Context, definitionID int) (*DeleteResult, error)

	ListValues(ctx context.Context, administratorID int, opts *ListOptions) (*Collection[*AdminAttributeValue], error)
	GetValue(ctx context.Context, administratorID, definitionID int) (*AdminAttributeValue, error)
	SetValue(ctx context.Context, administratorID, definitionID int, value string) (*AdminAttributeValue, error)
	DeleteValue(ctx context.Context, administratorID, definitionID int) (*DeleteResult, error)
}

// SubscribersClient provides access to subscribers.
type SubscribersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Collection[*Subscriber], error)
	Get(ctx context.Context, subscriberID int) (*Subscriber, error)
	Create(ctx context.Context, request *CreateSubscriberRequest) (*Subscriber, error)
	Update(ctx context.Context, subscriberID int, request *UpdateSubscriberRequest) (*Subscriber, error)
	Delete(ctx context.Context, subscriberID int) (*DeleteResult, error)

	// History returns the event log of a subscriber, newest entries
	// filtered according to the request.
	History(ctx context.Context, subscriberID int, request *SubscriberHistoryRequest) (*Collection[*SubscriberHistory], error)
	// Export returns subscriber rows as raw CSV bytes.
	Export(ctx context.Context, request *ExportSubscribersRequest) ([]byte, error)
	// Import uploads a CSV file of subscribers as a multipart form.
	Import(ctx context.Context, request *ImportSubscribersRequest) (*DeleteResult, error)
	// Confirm confirms a pending subscription by its unique ID and
	// returns the server's confirmation text.
	Confirm(ctx context.Context, uniqueID string) (string, error)
}

// SubscriberAttributesClient provides access to subscriber attribute
// definitions and per-subscriber attribute values.
type SubscriberAttributesClient interface {
	ListDefinitions(ctx context.Context, opts *ListOptions) (*Collection[*AttributeDefinition], error)
	GetDefinition(ctx context.Context, definitionID int) (*AttributeDefinition, error)
	CreateDefinition(ctx context.Context, request *CreateAttributeDefinitionRequest) (*AttributeDefinition, error)
	UpdateDefinition(ctx context.Context, definitionID int, request *UpdateAttributeDefinitionRequest) (*AttributeDefinition, error)
	DeleteDefinition(ctx context.Context, definitionID int) (*DeleteResult, error)

	ListValues(ctx context.Context, subscriberID int, opts *ListOptions) (*Collection[*SubscriberAttributeValue], error)
	GetValue(ctx context.Context, subscriberID, definitionID int) (*SubscriberAttributeValue, error)
	SetValue(ctx context.Context, subscriberID, definitionID int, value string) (*SubscriberAttributeValue, error)
	DeleteValue(ctx context.Context, subscriberID, definitionID int) (*DeleteResult, error)
}

// ListsClient provides access to subscriber lists and their membership.
type ListsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Collection[*SubscriberList], error)
	Get(ctx context.Context, listID int) (*SubscriberList, error)
	Create(ctx context.Context, request *CreateSubscriberListRequest) (*SubscriberList, error)
	Delete(ctx context.Context, listID int) (*DeleteResult, error)

	Members(ctx context.Context, listID int, opts *ListOptions) (*Collection[*Subscriber], error)
	CountMembers(ctx context.Context, listID int) (int, error)
	AddSubscriber(ctx context.Context, listID, subscriberID int) (*Subscription, error)
	RemoveSubscriber(ctx context.Context, listID, subscriberID int) (*DeleteResult, error)
}

// ListMessagesClient exposes the association between campaigns and
// subscriber lists.
type ListMessagesClient interface {
	CampaignsForList(ctx context.Context, listID int, opts *ListOptions) (*Collection[*Campaign], error)
	ListsForCampaign(ctx context.Context, campaignID int, opts *ListOptions) (*Collection[*SubscriberList], error)

	Associate(ctx context.Context, campaignID, listID int) (*DeleteResult, error)
	Dissociate(ctx context.Context, campaignID, listID int) (*DeleteResult, error)
	IsAssociated(ctx context.Context, campaignID, listID int) (bool, error)
	RemoveAllLists(ctx context.Context, campaignID int) (*DeleteResult, error)
}

// CampaignsClient provides access to campaigns.
type CampaignsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Collection[*Campaign], error)
	Get(ctx context.Context, campaignID int) (*Campaign, error)
	Create(ctx context.Context, request *CreateCampaignRequest) (*Campaign, error)
	Update(ctx context.Context, campaignID int, request *UpdateCampaignRequest) (*Campaign, error)
	Delete(ctx context.Context, campaignID int) (*DeleteResult, error)
}

// TemplatesClient provides access to campaign templates.
type TemplatesClient interface {
	List(ctx context.Context, opts *ListOptions) (*Collection[*Template], error)
	Get(ctx context.Context, templateID int) (*Template, error)
	Create(ctx context.Context, request *CreateTemplateRequest) (*Template, error)
	Delete(ctx context.Context, templateID int) (*DeleteResult, error)
}

// SubscribePagesClient provides access to subscribe pages.
type SubscribePagesClient interface {
	List(ctx context.Context, opts *ListOptions) (*Collection[*SubscribePage], error)
	Get(ctx context.Context, pageID int) (*SubscribePage, error)
	Create(ctx context.Context, request *CreateSubscribePageRequest) (*SubscribePage, error)
	Update(ctx context.Context, pageID int, request *UpdateSubscribePageRequest) (*SubscribePage, error)
	Delete(ctx context.Context, pageID int) (*DeleteResult, error)
}

// StatisticsClient provides access to campaign and audience reporting.
type StatisticsClient interface {
	CampaignStatistics(ctx context.Context, opts *ListOptions) (*Collection[*CampaignStatistic], error)
	ViewOpens(ctx context.Context, opts *ListOptions) (*Collection[*ViewOpen], error)
	TopDomains(ctx context.Context, opts *ListOptions) (*Collection[*TopDomain], error)
	TopLocalParts(ctx context.Context, opts *ListOptions) (*Collection[*TopLocalPart], error)
	DomainConfirmations(ctx context.Context, opts *ListOptions) (*Collection[*DomainConfirmation], error)
}

// BlacklistClient provides access to the suppression list.
type BlacklistClient interface {
	Add(ctx context.Context, email, reason string) (*BlacklistStatus, error)
	Check(ctx context.Context, email string) (*BlacklistStatus, error)
	// Info returns the full blacklist record, including when and why the
	// address was added. Unlike Check, an unknown address is a not-found
	// error.
	Info(ctx context.Context, email string) (*BlacklistStatus, error)
	Remove(ctx context.Context, email string) (*DeleteResult, error)
}

// BouncesClient provides access to bounce handling rules.
type BouncesClient interface {
	ListRegexes(ctx context.Context, opts *ListOptions) (*Collection[*BounceRegex], error)
	GetRegex(ctx context.Context, regexID int) (*BounceRegex, error)
	UpsertRegex(ctx context.Context, request *UpsertBounceRegexRequest) (*BounceRegex, error)
	DeleteRegex(ctx context.Context, regexID int) (*DeleteResult, error)
}

// PasswordResetClient drives the administrator password reset flow:
// request a token by email, validate it, then set a new password.
type PasswordResetClient interface {
	Request(ctx context.Context, email string) (*DeleteResult, error)
	Validate(ctx context.Context, token string) (bool, error)
	Reset(ctx context.Context, token, newPassword string) (*DeleteResult, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a phplist.Client.
//
// # Authentication
//
// The concrete client implementation (see pkg/listclient and
// internal/client) applies the following precedence:
//  1. SessionKey: if set, it is installed directly and sent as the
//     php-auth-pw header with every request.
//  2. LoginName/Password: stored for an explicit Login call; the client
//     does not log in implicitly.
//  3. No credentials: requests are sent without a session header and
//     protected endpoints will fail with an authentication error.
type Config struct {
	// BaseURL: root of the installation (e.g. "https://lists.example.com").
	// listclient.New normalizes this value by trimming a trailing slash
	// and adding "https://" if no scheme is present. The REST path
	// prefix ("/api/v2") is appended by the client and must not be part
	// of BaseURL.
	BaseURL string

	// Authentication options
	LoginName  string
	Password   string
	SessionKey string

	// Optional configurations
	// HTTPTimeout: optional default HTTP timeout where supported. Most
	// client calls should rely on context timeouts.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). 0 disables retries, which is the
	// default: most write endpoints are not idempotent.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}

// NewClient creates a new phpList API client
// Deprecated: Use github.com/phplist/go-client/pkg/listclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
