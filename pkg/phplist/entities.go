package phplist

import (
	"fmt"
	"time"
)

// Session is the credential record returned by a successful login.
type Session struct {
	ID     int
	Key    string
	Expiry *time.Time
}

// NewSession hydrates a session from a login response payload. The
// caller is responsible for rejecting payloads without a key.
func NewSession(data Object) *Session {
	return &Session{
		ID:     data.Int("id"),
		Key:    data.String("key"),
		Expiry: data.OptTime("expiry_date"),
	}
}

// Administrator represents an administrator account.
type Administrator struct {
	ID        int
	LoginName string
	Email     string
	SuperUser bool
	CreatedAt time.Time
}

// NewAdministrator hydrates an administrator. The creation timestamp is
// domain-mandatory: its absence is a construction error rather than a
// defaulted field.
func NewAdministrator(data Object) (*Administrator, error) {
	createdAt, err := data.RequiredTime("created_at")
	if err != nil {
		return nil, fmt.Errorf("hydrating administrator: %w", err)
	}

	return &Administrator{
		ID:        data.Int("id"),
		LoginName: data.String("login_name"),
		Email:     data.String("email"),
		SuperUser: data.Bool("super_user"),
		CreatedAt: createdAt,
	}, nil
}

// Subscriber represents a mailing-list subscriber.
type Subscriber struct {
	ID              int
	Email           string
	CreatedAt       *time.Time
	Confirmed       bool
	Blacklisted     bool
	BounceCount     int
	UniqueID        string
	HTMLEmail       bool
	Disabled        bool
	SubscribedLists []SubscriberList
}

// NewSubscriber hydrates a subscriber.
func NewSubscriber(data Object) (*Subscriber, error) {
	subscriber := &Subscriber{
		ID:          data.Int("id"),
		Email:       data.String("email"),
		CreatedAt:   data.OptTime("created_at"),
		Confirmed:   data.Bool("confirmed"),
		Blacklisted: data.Bool("blacklisted"),
		BounceCount: data.Int("bounce_count"),
		UniqueID:    data.String("unique_id"),
		HTMLEmail:   data.Bool("html_email"),
		Disabled:    data.Bool("disabled"),
	}

	for _, raw := range data.List("subscribed_lists") {
		object, ok := AsObject(raw)
		if !ok {
			continue
		}

		list, err := NewSubscriberList(object)
		if err != nil {
			continue
		}

		subscriber.SubscribedLists = append(subscriber.SubscribedLists, *list)
	}

	return subscriber, nil
}

// SubscriberList represents a mailing list subscribers can join.
type SubscriberList struct {
	ID            int
	Name          string
	CreatedAt     time.Time
	Description   *string
	ListPosition  *int
	SubjectPrefix *string
	Public        bool
	Category      *string
}

// NewSubscriberList hydrates a subscriber list. An absent creation
// timestamp keeps the zero time rather than failing; lists embedded in
// other payloads routinely omit it.
func NewSubscriberList(data Object) (*SubscriberList, error) {
	return &SubscriberList{
		ID:            data.Int("id"),
		Name:          data.String("name"),
		CreatedAt:     data.Time("created_at"),
		Description:   data.OptString("description"),
		ListPosition:  data.OptInt("list_position"),
		SubjectPrefix: data.OptString("subject_prefix"),
		Public:        data.Bool("public"),
		Category:      data.OptString("category"),
	}, nil
}

// Subscription links a subscriber to a list.
type Subscription struct {
	Subscriber       Subscriber
	SubscriberList   SubscriberList
	SubscriptionDate time.Time
}

// NewSubscription hydrates a subscription. Both sides of the link are
// domain-mandatory.
func NewSubscription(data Object) (*Subscription, error) {
	subscriberData, err := data.RequiredObject("subscriber")
	if err != nil {
		return nil, fmt.Errorf("hydrating subscription: %w", err)
	}

	listData, err := data.RequiredObject("subscriber_list")
	if err != nil {
		return nil, fmt.Errorf("hydrating subscription: %w", err)
	}

	subscriber, err := NewSubscriber(subscriberData)
	if err != nil {
		return nil, fmt.Errorf("hydrating subscription subscriber: %w", err)
	}

	list, err := NewSubscriberList(listData)
	if err != nil {
		return nil, fmt.Errorf("hydrating subscription list: %w", err)
	}

	return &Subscription{
		Subscriber:       *subscriber,
		SubscriberList:   *list,
		SubscriptionDate: data.Time("subscription_date"),
	}, nil
}

// Template represents a campaign template.
type Template struct {
	ID      int
	Title   string
	Text    *string
	Content *string
	Order   *string
	Images  []string
}

// NewTemplate hydrates a template.
func NewTemplate(data Object) (*Template, error) {
	return &Template{
		ID:      data.Int("id"),
		Title:   data.String("title"),
		Text:    data.OptString("text"),
		Content: data.OptString("content"),
		Order:   data.OptString("order"),
		Images:  data.StringSlice("images"),
	}, nil
}

// SubscribePage represents a public subscribe page.
type SubscribePage struct {
	ID     int
	Title  string
	Active bool
	Owner  *Administrator
}

// NewSubscribePage hydrates a subscribe page. The owner is optional and
// degrades to nil when its own hydration fails.
func NewSubscribePage(data Object) (*SubscribePage, error) {
	page := &SubscribePage{
		ID:     data.Int("id"),
		Title:  data.String("title"),
		Active: data.Bool("active"),
	}

	if ownerData := data.Object("owner"); ownerData != nil {
		owner, err := NewAdministrator(ownerData)
		if err == nil {
			page.Owner = owner
		}
	}

	return page, nil
}

// BounceRegex represents a bounce-processing regular expression.
type BounceRegex struct {
	ID        int
	Regex     string
	RegexHash string
	Action    *string
	ListOrder *int
	AdminID   *int
	Comment   *string
	Status    *string
	Count     *int
}

// NewBounceRegex hydrates a bounce regex.
func NewBounceRegex(data Object) (*BounceRegex, error) {
	return &BounceRegex{
		ID:        data.Int("id"),
		Regex:     data.String("regex"),
		RegexHash: data.String("regex_hash"),
		Action:    data.OptString("action"),
		ListOrder: data.OptInt("list_order"),
		AdminID:   data.OptInt("admin_id"),
		Comment:   data.OptString("comment"),
		Status:    data.OptString("status"),
		Count:     data.OptInt("count"),
	}, nil
}

// SubscriberHistory is one audit record of a subscriber's activity.
type SubscriberHistory struct {
	ID         int
	IP         string
	CreatedAt  *time.Time
	Summary    string
	Detail     string
	SystemInfo string
}

// NewSubscriberHistory hydrates a subscriber history record.
func NewSubscriberHistory(data Object) (*SubscriberHistory, error) {
	// Older servers spell the summary key "summery".
	summary := data.String("summary")
	if summary == "" {
		summary = data.String("summery")
	}

	return &SubscriberHistory{
		ID:         data.Int("id"),
		IP:         data.String("ip"),
		CreatedAt:  data.OptTime("created_at"),
		Summary:    summary,
		Detail:     data.String("detail"),
		SystemInfo: data.String("system_info"),
	}, nil
}

// BlacklistStatus describes an email address's blacklist state.
type BlacklistStatus struct {
	Email       string
	Blacklisted bool
	Reason      *string
	AddedAt     *time.Time
}

// NewBlacklistStatus hydrates a blacklist check/info response.
func NewBlacklistStatus(data Object) (*BlacklistStatus, error) {
	return &BlacklistStatus{
		Email:       data.String("email"),
		Blacklisted: data.Bool("blacklisted"),
		Reason:      data.OptString("reason"),
		AddedAt:     data.OptTime("added_at"),
	}, nil
}

// DeleteResult reports the outcome of a delete operation.
type DeleteResult struct {
	Success bool
	Message *string
}

// NewDeleteResult hydrates a delete response.
func NewDeleteResult(data Object) *DeleteResult {
	return &DeleteResult{
		Success: data.Bool("success"),
		Message: data.OptString("text_message"),
	}
}
