package phplist

import "time"

// Campaign represents a campaign (message) with its nested value
// objects. The nested shape is the canonical one; servers may omit any
// of the sub-objects, in which case the field stays nil.
type Campaign struct {
	ID       int
	UniqueID string
	Template *Template
	Content  *MessageContent
	Format   *MessageFormat
	Metadata *MessageMetadata
	Schedule *MessageSchedule
	Options  *MessageOptions
}

// NewCampaign hydrates a campaign including its nested value objects.
func NewCampaign(data Object) (*Campaign, error) {
	campaign := &Campaign{
		ID:       data.Int("id"),
		UniqueID: data.String("unique_id"),
	}

	if templateData := data.Object("template"); templateData != nil {
		template, err := NewTemplate(templateData)
		if err == nil {
			campaign.Template = template
		}
	}

	if contentData := data.Object("message_content"); contentData != nil {
		campaign.Content = NewMessageContent(contentData)
	}

	if formatData := data.Object("message_format"); formatData != nil {
		campaign.Format = NewMessageFormat(formatData)
	}

	if metadataData := data.Object("message_metadata"); metadataData != nil {
		campaign.Metadata = NewMessageMetadata(metadataData)
	}

	if scheduleData := data.Object("message_schedule"); scheduleData != nil {
		campaign.Schedule = NewMessageSchedule(scheduleData)
	}

	if optionsData := data.Object("message_options"); optionsData != nil {
		campaign.Options = NewMessageOptions(optionsData)
	}

	return campaign, nil
}

// MessageContent is the textual content of a campaign.
type MessageContent struct {
	Subject     *string
	TextMessage *string
	Text        *string
	Footer      *string
}

// NewMessageContent hydrates campaign content.
func NewMessageContent(data Object) *MessageContent {
	return &MessageContent{
		Subject:     data.OptString("subject"),
		TextMessage: data.OptString("text_message"),
		Text:        data.OptString("text"),
		Footer:      data.OptString("footer"),
	}
}

// MessageFormat describes how a campaign is rendered and sent.
type MessageFormat struct {
	HTMLFormated  *bool
	SendFormat    *string
	FormatOptions []string
}

// NewMessageFormat hydrates campaign format settings.
func NewMessageFormat(data Object) *MessageFormat {
	return &MessageFormat{
		HTMLFormated:  data.OptBool("html_formated"),
		SendFormat:    data.OptString("send_format"),
		FormatOptions: data.StringSlice("format_options"),
	}
}

// MessageMetadata carries a campaign's lifecycle state and counters.
type MessageMetadata struct {
	Status      *string
	Processed   *bool
	Views       *int
	BounceCount *int
	Entered     *time.Time
	Sent        *time.Time
}

// NewMessageMetadata hydrates campaign metadata.
func NewMessageMetadata(data Object) *MessageMetadata {
	return &MessageMetadata{
		Status:      data.OptString("status"),
		Processed:   data.OptBool("processed"),
		Views:       data.OptInt("views"),
		BounceCount: data.OptInt("bounce_count"),
		Entered:     data.OptTime("entered"),
		Sent:        data.OptTime("sent"),
	}
}

// MessageSchedule carries a campaign's send scheduling.
type MessageSchedule struct {
	RepeatInterval  *int
	RepeatUntil     *time.Time
	RequeueInterval *int
	RequeueUntil    *time.Time
	Embargo         *time.Time
}

// NewMessageSchedule hydrates campaign scheduling.
func NewMessageSchedule(data Object) *MessageSchedule {
	return &MessageSchedule{
		RepeatInterval:  data.OptInt("repeat_interval"),
		RepeatUntil:     data.OptTime("repeat_until"),
		RequeueInterval: data.OptInt("requeue_interval"),
		RequeueUntil:    data.OptTime("requeue_until"),
		Embargo:         data.OptTime("embargo"),
	}
}

// MessageOptions carries a campaign's addressing options.
type MessageOptions struct {
	FromField     *string
	ToField       *string
	ReplyTo       *string
	UserSelection *string
}

// NewMessageOptions hydrates campaign addressing options.
func NewMessageOptions(data Object) *MessageOptions {
	return &MessageOptions{
		FromField:     data.OptString("from_field"),
		ToField:       data.OptString("to_field"),
		ReplyTo:       data.OptString("reply_to"),
		UserSelection: data.OptString("user_selection"),
	}
}
