package phplist

import "fmt"

// AttributeDefinition describes a custom attribute attached to
// administrators or subscribers. Both resource families share the same
// definition shape.
type AttributeDefinition struct {
	ID           int
	Name         string
	Type         string
	Required     bool
	DefaultValue *string
	Description  *string
	ListOrder    *int
}

// NewAttributeDefinition hydrates an attribute definition.
func NewAttributeDefinition(data Object) (*AttributeDefinition, error) {
	return &AttributeDefinition{
		ID:           data.Int("id"),
		Name:         data.String("name"),
		Type:         data.String("type"),
		Required:     data.Bool("required"),
		DefaultValue: data.OptString("default_value"),
		Description:  data.OptString("description"),
		ListOrder:    data.OptInt("list_order"),
	}, nil
}

// AdminAttributeValue is an attribute value attached to an
// administrator. The owning administrator and the definition are
// domain-mandatory.
type AdminAttributeValue struct {
	Administrator Administrator
	Definition    AttributeDefinition
	Value         *string
}

// NewAdminAttributeValue hydrates an admin attribute value.
func NewAdminAttributeValue(data Object) (*AdminAttributeValue, error) {
	adminData, err := data.RequiredObject("administrator")
	if err != nil {
		return nil, fmt.Errorf("hydrating admin attribute value: %w", err)
	}

	definitionData, err := data.RequiredObject("definition")
	if err != nil {
		return nil, fmt.Errorf("hydrating admin attribute value: %w", err)
	}

	administrator, err := NewAdministrator(adminData)
	if err != nil {
		return nil, fmt.Errorf("hydrating admin attribute value administrator: %w", err)
	}

	definition, err := NewAttributeDefinition(definitionData)
	if err != nil {
		return nil, fmt.Errorf("hydrating admin attribute value definition: %w", err)
	}

	return &AdminAttributeValue{
		Administrator: *administrator,
		Definition:    *definition,
		Value:         data.OptString("value"),
	}, nil
}

// SubscriberAttributeValue is an attribute value attached to a
// subscriber. The owning subscriber and the definition are
// domain-mandatory.
type SubscriberAttributeValue struct {
	Subscriber Subscriber
	Definition AttributeDefinition
	Value      *string
}

// NewSubscriberAttributeValue hydrates a subscriber attribute value.
func NewSubscriberAttributeValue(data Object) (*SubscriberAttributeValue, error) {
	subscriberData, err := data.RequiredObject("subscriber")
	if err != nil {
		return nil, fmt.Errorf("hydrating subscriber attribute value: %w", err)
	}

	definitionData, err := data.RequiredObject("definition")
	if err != nil {
		return nil, fmt.Errorf("hydrating subscriber attribute value: %w", err)
	}

	subscriber, err := NewSubscriber(subscriberData)
	if err != nil {
		return nil, fmt.Errorf("hydrating subscriber attribute value subscriber: %w", err)
	}

	definition, err := NewAttributeDefinition(definitionData)
	if err != nil {
		return nil, fmt.Errorf("hydrating subscriber attribute value definition: %w", err)
	}

	return &SubscriberAttributeValue{
		Subscriber: *subscriber,
		Definition: *definition,
		Value:      data.OptString("value"),
	}, nil
}
