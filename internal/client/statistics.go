package client

import (
	"context"

	"github.com/phplist/go-client/internal/http"
	"github.com/phplist/go-client/pkg/phplist"
)

// StatisticsClient implements phplist.StatisticsClient.
type StatisticsClient struct {
	httpClient *http.Client
}

// NewStatisticsClient creates a new statistics client.
func NewStatisticsClient(httpClient *http.Client) *StatisticsClient {
	return &StatisticsClient{
		httpClient: httpClient,
	}
}

// CampaignStatistics implements phplist.StatisticsClient.CampaignStatistics.
func (c *StatisticsClient) CampaignStatistics(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.CampaignStatistic], error) {
	return getCollection(ctx, c.httpClient, "statistics/campaigns", opts, phplist.NewCampaignStatistic, "campaign statistics")
}

// ViewOpens implements phplist.StatisticsClient.ViewOpens.
func (c *StatisticsClient) ViewOpens(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.ViewOpen], error) {
	return getCollection(ctx, c.httpClient, "statistics/view-opens", opts, phplist.NewViewOpen, "view opens")
}

// TopDomains implements phplist.StatisticsClient.TopDomains.
func (c *StatisticsClient) TopDomains(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.TopDomain], error) {
	return getCollection(ctx, c.httpClient, "statistics/top-domains", opts, phplist.NewTopDomain, "top domains")
}

// TopLocalParts implements phplist.StatisticsClient.TopLocalParts.
func (c *StatisticsClient) TopLocalParts(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.TopLocalPart], error) {
	return getCollection(ctx, c.httpClient, "statistics/top-local-parts", opts, phplist.NewTopLocalPart, "top local parts")
}

// DomainConfirmations implements phplist.StatisticsClient.DomainConfirmations.
func (c *StatisticsClient) DomainConfirmations(ctx context.Context, opts *phplist.ListOptions) (*phplist.Collection[*phplist.DomainConfirmation], error) {
	return getCollection(ctx, c.httpClient, "statistics/domain-confirmations", opts, phplist.NewDomainConfirmation, "domain confirmations")
}
