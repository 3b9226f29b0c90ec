// Package rod provides a browser-based implementation of siteql.Fetcher
// for pages that require JavaScript rendering.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/mlipski/siteql"
)

// Ensure Fetcher implements siteql.Fetcher at compile time.
var _ siteql.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using headless Chrome.
type Fetcher struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	renderDelay time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRenderDelay adds a fixed delay after page load before the HTML is
// read. Some single-page apps populate content asynchronously after load.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// NewFetcher launches a headless Chrome browser. Close must be called when
// the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	f.launcher = launcher.New().Headless(true)
	u, err := f.launcher.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	f.browser = rod.New().ControlURL(u)
	if err := f.browser.Connect(); err != nil {
		f.launcher.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return f, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.renderDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.renderDelay):
		}
	}

	return page.HTML()
}

// Close shuts down the browser and its launcher process.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
