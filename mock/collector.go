package mock

import (
	"context"

	"github.com/mlipski/siteql"
)

var _ siteql.LinkCollector = (*LinkCollector)(nil)

// LinkCollector is a mock implementation of siteql.LinkCollector.
type LinkCollector struct {
	CollectLinksFn func(ctx context.Context, seedURL string, max int) ([]string, error)
}

func (c *LinkCollector) CollectLinks(ctx context.Context, seedURL string, max int) ([]string, error) {
	return c.CollectLinksFn(ctx, seedURL, max)
}
