package phplist

import (
	"io"
	"time"
)

// Request is a typed container of fields for a create/update call. Its
// payload contains exactly the fields that were set: optional fields
// are pointers, and a nil pointer is absent rather than serialized as
// the type's zero value. Explicitly set false/0/"" values are included.
type Request interface {
	Payload() *Payload
}

// CreateAdministratorRequest carries the fields for creating an
// administrator.
type CreateAdministratorRequest struct {
	LoginName string
	Password  string
	Email     string
	SuperUser bool
	Privileges []string
}

// Payload implements Request.
func (r *CreateAdministratorRequest) Payload() *Payload {
	return NewPayload().
		Set("loginName", r.LoginName).
		Set("password", r.Password).
		Set("email", r.Email).
		Set("superUser", r.SuperUser).
		SetOpt("privileges", r.Privileges)
}

// UpdateAdministratorRequest carries the fields for a partial
// administrator update.
type UpdateAdministratorRequest struct {
	LoginName  *string
	Password   *string
	Email      *string
	SuperUser  *bool
	Privileges []string
}

// Payload implements Request.
func (r *UpdateAdministratorRequest) Payload() *Payload {
	return NewPayload().
		SetOpt("loginName", r.LoginName).
		SetOpt("password", r.Password).
		SetOpt("email", r.Email).
		SetOpt("superUser", r.SuperUser).
		SetOpt("privileges", r.Privileges)
}

// CreateAttributeDefinitionRequest carries the fields for creating an
// attribute definition. TableName applies to administrator attributes,
// Options to subscriber attributes; the server ignores whichever does
// not apply.
type CreateAttributeDefinitionRequest struct {
	Name         string
	Type         *string
	Order        *int
	DefaultValue *string
	Required     *bool
	TableName    *string
	Options      []string
}

// Payload implements Request.
func (r *CreateAttributeDefinitionRequest) Payload() *Payload {
	return NewPayload().
		Set("name", r.Name).
		SetOpt("type", r.Type).
		SetOpt("order", r.Order).
		SetOpt("defaultValue", r.DefaultValue).
		SetOpt("required", r.Required).
		SetOpt("tableName", r.TableName).
		SetOpt("options", r.Options)
}

// UpdateAttributeDefinitionRequest carries the fields for a partial
// attribute definition update.
type UpdateAttributeDefinitionRequest struct {
	Name         *string
	Type         *string
	Order        *int
	DefaultValue *string
	Required     *bool
	TableName    *string
	Options      []string
}

// Payload implements Request.
func (r *UpdateAttributeDefinitionRequest) Payload() *Payload {
	return NewPayload().
		SetOpt("name", r.Name).
		SetOpt("type", r.Type).
		SetOpt("order", r.Order).
		SetOpt("defaultValue", r.DefaultValue).
		SetOpt("required", r.Required).
		SetOpt("tableName", r.TableName).
		SetOpt("options", r.Options)
}

// CreateSubscriberRequest carries the fields for creating a subscriber.
type CreateSubscriberRequest struct {
	Email               string
	RequestConfirmation *bool
	HTMLEmail           *bool
}

// Payload implements Request.
func (r *CreateSubscriberRequest) Payload() *Payload {
	return NewPayload().
		Set("email", r.Email).
		SetOpt("requestConfirmation", r.RequestConfirmation).
		SetOpt("htmlEmail", r.HTMLEmail)
}

// UpdateSubscriberRequest carries the fields for a partial subscriber
// update.
type UpdateSubscriberRequest struct {
	Email          string
	Confirmed      *bool
	Blacklisted    *bool
	HTMLEmail      *bool
	Disabled       *bool
	AdditionalData *string
}

// Payload implements Request.
func (r *UpdateSubscriberRequest) Payload() *Payload {
	return NewPayload().
		Set("email", r.Email).
		SetOpt("confirmed", r.Confirmed).
		SetOpt("blacklisted", r.Blacklisted).
		SetOpt("htmlEmail", r.HTMLEmail).
		SetOpt("disabled", r.Disabled).
		SetOpt("additionalData", r.AdditionalData)
}

// SubscriberHistoryRequest filters a subscriber history listing.
type SubscriberHistoryRequest struct {
	AfterID  *int
	Limit    *int
	IP       *string
	DateFrom *string
	Summary  *string
}

// Payload implements Request.
func (r *SubscriberHistoryRequest) Payload() *Payload {
	return NewPayload().
		SetOpt("afterId", r.AfterID).
		SetOpt("limit", r.Limit).
		SetOpt("ip", r.IP).
		SetOpt("dateFrom", r.DateFrom).
		// The server expects the historical misspelling of this key.
		SetOpt("summery", r.Summary)
}

// ExportSubscribersRequest carries the filters and column selection of
// a CSV export.
type ExportSubscribersRequest struct {
	DateType string
	ListID   *int
	DateFrom *string
	DateTo   *string
	Columns  []string
}

// DefaultExportColumns is the column set exported when a request does
// not name its own.
var DefaultExportColumns = []string{
	"id", "email", "confirmed", "blacklisted", "bounceCount",
	"createdAt", "updatedAt", "uniqueId", "htmlEmail", "disabled",
	"extraData",
}

// Payload implements Request.
func (r *ExportSubscribersRequest) Payload() *Payload {
	dateType := r.DateType
	if dateType == "" {
		dateType = "any"
	}

	columns := r.Columns
	if columns == nil {
		columns = DefaultExportColumns
	}

	return NewPayload().
		Set("dateType", dateType).
		SetOpt("listId", r.ListID).
		SetOpt("dateFrom", r.DateFrom).
		SetOpt("dateTo", r.DateTo).
		Set("columns", columns)
}

// ImportSubscribersRequest carries a CSV file and import options. It is
// sent as a multipart form rather than JSON.
type ImportSubscribersRequest struct {
	File              io.Reader
	Filename          string
	ListID            *int
	UpdateExisting    bool
	SkipInvalidEmails bool
}

// Payload returns the non-file form fields of the import.
func (r *ImportSubscribersRequest) Payload() *Payload {
	payload := NewPayload().
		SetOpt("listId", r.ListID).
		Set("updateExisting", r.UpdateExisting).
		Set("skipInvalidEmails", r.SkipInvalidEmails)

	return payload
}

// CreateSubscriberListRequest carries the fields for creating a list.
type CreateSubscriberListRequest struct {
	Name         string
	Public       *bool
	ListPosition *int
	Description  *string
}

// Payload implements Request.
func (r *CreateSubscriberListRequest) Payload() *Payload {
	return NewPayload().
		Set("name", r.Name).
		SetOpt("public", r.Public).
		SetOpt("listPosition", r.ListPosition).
		SetOpt("description", r.Description)
}

// CampaignContentRequest is the content section of a campaign write.
type CampaignContentRequest struct {
	Subject     *string
	Text        *string
	TextMessage *string
	Footer      *string
}

// Payload implements Request.
func (r *CampaignContentRequest) Payload() *Payload {
	return NewPayload().
		SetOpt("subject", r.Subject).
		SetOpt("text", r.Text).
		SetOpt("textMessage", r.TextMessage).
		SetOpt("footer", r.Footer)
}

// CampaignFormatRequest is the format section of a campaign write.
type CampaignFormatRequest struct {
	HTMLFormated  *bool
	SendFormat    *string
	FormatOptions []string
}

// Payload implements Request.
func (r *CampaignFormatRequest) Payload() *Payload {
	return NewPayload().
		SetOpt("htmlFormated", r.HTMLFormated).
		SetOpt("sendFormat", r.SendFormat).
		SetOpt("formatOptions", r.FormatOptions)
}

// CampaignMetadataRequest is the metadata section of a campaign write.
type CampaignMetadataRequest struct {
	Status *string
}

// Payload implements Request.
func (r *CampaignMetadataRequest) Payload() *Payload {
	return NewPayload().SetOpt("status", r.Status)
}

// CampaignScheduleRequest is the schedule section of a campaign write.
type CampaignScheduleRequest struct {
	Embargo         *time.Time
	RepeatInterval  *int
	RepeatUntil     *time.Time
	RequeueInterval *int
	RequeueUntil    *time.Time
}

// Payload implements Request.
func (r *CampaignScheduleRequest) Payload() *Payload {
	return NewPayload().
		SetOpt("embargo", r.Embargo).
		SetOpt("repeatInterval", r.RepeatInterval).
		SetOpt("repeatUntil", r.RepeatUntil).
		SetOpt("requeueInterval", r.RequeueInterval).
		SetOpt("requeueUntil", r.RequeueUntil)
}

// CampaignOptionsRequest is the options section of a campaign write.
type CampaignOptionsRequest struct {
	FromField     *string
	ToField       *string
	ReplyTo       *string
	UserSelection *string
}

// Payload implements Request.
func (r *CampaignOptionsRequest) Payload() *Payload {
	return NewPayload().
		SetOpt("fromField", r.FromField).
		SetOpt("toField", r.ToField).
		SetOpt("replyTo", r.ReplyTo).
		SetOpt("userSelection", r.UserSelection)
}

// CreateCampaignRequest carries the nested sections of a campaign
// create. Nil sections are omitted from the payload.
type CreateCampaignRequest struct {
	Content    *CampaignContentRequest
	Format     *CampaignFormatRequest
	Metadata   *CampaignMetadataRequest
	Schedule   *CampaignScheduleRequest
	Options    *CampaignOptionsRequest
	TemplateID *int
}

// Payload implements Request.
func (r *CreateCampaignRequest) Payload() *Payload {
	return campaignPayload(r.Content, r.Format, r.Metadata, r.Schedule, r.Options, r.TemplateID)
}

// UpdateCampaignRequest carries the nested sections of a campaign
// update. Nil sections are left untouched on the server.
type UpdateCampaignRequest struct {
	Content    *CampaignContentRequest
	Format     *CampaignFormatRequest
	Metadata   *CampaignMetadataRequest
	Schedule   *CampaignScheduleRequest
	Options    *CampaignOptionsRequest
	TemplateID *int
}

// Payload implements Request.
func (r *UpdateCampaignRequest) Payload() *Payload {
	return campaignPayload(r.Content, r.Format, r.Metadata, r.Schedule, r.Options, r.TemplateID)
}

func campaignPayload(
	content *CampaignContentRequest,
	format *CampaignFormatRequest,
	metadata *CampaignMetadataRequest,
	schedule *CampaignScheduleRequest,
	options *CampaignOptionsRequest,
	templateID *int,
) *Payload {
	payload := NewPayload()

	if content != nil {
		payload.Set("content", content.Payload())
	}

	if format != nil {
		payload.Set("format", format.Payload())
	}

	if metadata != nil {
		payload.Set("metadata", metadata.Payload())
	}

	if schedule != nil {
		payload.Set("schedule", schedule.Payload())
	}

	if options != nil {
		payload.Set("options", options.Payload())
	}

	payload.SetOpt("templateId", templateID)

	return payload
}

// CreateTemplateRequest carries the fields for creating a template.
type CreateTemplateRequest struct {
	Title               string
	Content             *string
	Text                *string
	File                *string
	CheckLinks          *bool
	CheckImages         *bool
	CheckExternalImages *bool
}

// Payload implements Request.
func (r *CreateTemplateRequest) Payload() *Payload {
	return NewPayload().
		Set("title", r.Title).
		SetOpt("content", r.Content).
		SetOpt("text", r.Text).
		SetOpt("file", r.File).
		SetOpt("checkLinks", r.CheckLinks).
		SetOpt("checkImages", r.CheckImages).
		SetOpt("checkExternalImages", r.CheckExternalImages)
}

// CreateSubscribePageRequest carries the fields for creating a
// subscribe page.
type CreateSubscribePageRequest struct {
	Title  string
	Active *bool
}

// Payload implements Request.
func (r *CreateSubscribePageRequest) Payload() *Payload {
	return NewPayload().
		Set("title", r.Title).
		SetOpt("active", r.Active)
}

// UpdateSubscribePageRequest carries the fields for a partial subscribe
// page update.
type UpdateSubscribePageRequest struct {
	Title  *string
	Active *bool
}

// Payload implements Request.
func (r *UpdateSubscribePageRequest) Payload() *Payload {
	return NewPayload().
		SetOpt("title", r.Title).
		SetOpt("active", r.Active)
}

// UpsertBounceRegexRequest carries the fields of a bounce regex
// create-or-update.
type UpsertBounceRegexRequest struct {
	Regex     string
	Action    *string
	ListOrder *int
	AdminID   *int
	Comment   *string
	Status    *string
}

// Payload implements Request.
func (r *UpsertBounceRegexRequest) Payload() *Payload {
	return NewPayload().
		Set("regex", r.Regex).
		SetOpt("action", r.Action).
		SetOpt("listOrder", r.ListOrder).
		SetOpt("adminId", r.AdminID).
		SetOpt("comment", r.Comment).
		SetOpt("status", r.Status)
}
