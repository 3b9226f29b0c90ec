package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlhttp "github.com/mlipski/siteql/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := sqlhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", html)
	})

	t.Run("sends browser user agent by default", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := sqlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, sqlhttp.DefaultUserAgent, gotUA)
	})

	t.Run("sends a custom user agent when configured", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := sqlhttp.NewFetcher(sqlhttp.WithUserAgent("siteql-test/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "siteql-test/1.0", gotUA)
	})

	t.Run("returns error on non-200 status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		f := sqlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("respects the configured timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		f := sqlhttp.NewFetcher(sqlhttp.WithTimeout(20 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Error(t, err)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := sqlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(ctx, srv.URL)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns error for invalid URL", func(t *testing.T) {
		t.Parallel()

		f := sqlhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "://not-a-url")
		assert.Error(t, err)
	})
}
