package mock

import (
	"context"

	"github.com/mlipski/siteql"
)

var _ siteql.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of siteql.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *siteql.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *siteql.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ siteql.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of siteql.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
