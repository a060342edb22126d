package phplist

import "time"

// CampaignStatistic is the delivery summary for one campaign.
type CampaignStatistic struct {
	CampaignID   int
	Subject      string
	DateSent     *time.Time
	Sent         int
	Bounces      int
	Forwards     int
	UniqueViews  int
	TotalClicks  int
	UniqueClicks int
}

// NewCampaignStatistic hydrates a campaign statistic record.
func NewCampaignStatistic(data Object) (*CampaignStatistic, error) {
	return &CampaignStatistic{
		CampaignID:   data.Int("campaign_id"),
		Subject:      data.String("subject"),
		DateSent:     data.OptTime("date_sent"),
		Sent:         data.Int("sent"),
		Bounces:      data.Int("bounces"),
		Forwards:     data.Int("forwards"),
		UniqueViews:  data.Int("unique_views"),
		TotalClicks:  data.Int("total_clicks"),
		UniqueClicks: data.Int("unique_clicks"),
	}, nil
}

// ViewOpen is the open-rate record for one campaign.
type ViewOpen struct {
	CampaignID  int
	Subject     string
	Sent        int
	UniqueViews int
	Rate        float64
}

// NewViewOpen hydrates a view-opens record.
func NewViewOpen(data Object) (*ViewOpen, error) {
	return &ViewOpen{
		CampaignID:  data.Int("campaign_id"),
		Subject:     data.String("subject"),
		Sent:        data.Int("sent"),
		UniqueViews: data.Int("unique_views"),
		Rate:        data.Float("rate"),
	}, nil
}

// TopDomain is one entry of the most-subscribed domains ranking.
type TopDomain struct {
	Domain      string
	Subscribers int
	Percentage  float64
}

// NewTopDomain hydrates a top-domain record.
func NewTopDomain(data Object) (*TopDomain, error) {
	return &TopDomain{
		Domain:      data.String("domain"),
		Subscribers: data.Int("subscribers"),
		Percentage:  data.Float("percentage"),
	}, nil
}

// TopLocalPart is one entry of the most-used local-parts ranking.
type TopLocalPart struct {
	LocalPart  string
	Count      int
	Percentage float64
}

// NewTopLocalPart hydrates a top-local-part record.
func NewTopLocalPart(data Object) (*TopLocalPart, error) {
	return &TopLocalPart{
		LocalPart:  data.String("local_part"),
		Count:      data.Int("count"),
		Percentage: data.Float("percentage"),
	}, nil
}

// DomainConfirmation is the per-domain confirmation breakdown.
type DomainConfirmation struct {
	Domain           string
	Total            int
	Confirmed        int
	Unconfirmed      int
	ConfirmationRate float64
}

// NewDomainConfirmation hydrates a domain confirmation record.
func NewDomainConfirmation(data Object) (*DomainConfirmation, error) {
	return &DomainConfirmation{
		Domain:           data.String("domain"),
		Total:            data.Int("total"),
		Confirmed:        data.Int("confirmed"),
		Unconfirmed:      data.Int("unconfirmed"),
		ConfirmationRate: data.Float("confirmation_rate"),
	}, nil
}
