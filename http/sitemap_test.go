package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/mlipski/siteql"
	sqlhttp "github.com/mlipski/siteql/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlsetXML(urls ...string) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, u := range urls {
		body += "<url><loc>" + u + "</loc></url>"
	}
	return body + "</urlset>"
}

func sitemapIndexXML(sitemaps ...string) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`
	for _, s := range sitemaps {
		body += "<sitemap><loc>" + s + "</loc></sitemap>"
	}
	return body + "</sitemapindex>"
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("discovers via robots.txt directive", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nDisallow:\nSitemap: %s/custom-sitemap.xml\n", srv.URL)
		})
		mux.HandleFunc("/custom-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/a", srv.URL+"/b"))
		})

		svc := sqlhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
	})

	t.Run("falls back to sitemap.xml without robots.txt", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/page"))
		})

		svc := sqlhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page"}, urls)
	})

	t.Run("walks a sitemap index in order", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, sitemapIndexXML(srv.URL+"/sitemap-1.xml", srv.URL+"/sitemap-2.xml"))
		})
		mux.HandleFunc("/sitemap-1.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/one"))
		})
		mux.HandleFunc("/sitemap-2.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/two", srv.URL+"/three"))
		})

		svc := sqlhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/one", srv.URL + "/two", srv.URL + "/three"}, urls)
	})

	t.Run("survives a self-referencing sitemap index", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, sitemapIndexXML(srv.URL+"/sitemap.xml", srv.URL+"/sitemap-1.xml"))
		})
		mux.HandleFunc("/sitemap-1.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/page"))
		})

		svc := sqlhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page"}, urls)
	})

	t.Run("restricts to the base URL path prefix", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(
				srv.URL+"/blog/post-1",
				srv.URL+"/blogger/profile",
				srv.URL+"/about",
			))
		})

		svc := sqlhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/blog/", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/blog/post-1"}, urls)
	})

	t.Run("applies include and exclude filters", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(
				srv.URL+"/docs/intro",
				srv.URL+"/docs/archive/old",
				srv.URL+"/pricing",
			))
		})

		filter := &siteql.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/archive/`)},
		}

		svc := sqlhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		svc := sqlhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("deduplicates URLs across sitemaps", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "Sitemap: %s/a.xml\nSitemap: %s/b.xml\n", srv.URL, srv.URL)
		})
		mux.HandleFunc("/a.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/shared", srv.URL+"/only-a"))
		})
		mux.HandleFunc("/b.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlsetXML(srv.URL+"/shared", srv.URL+"/only-b"))
		})

		svc := sqlhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/shared", srv.URL + "/only-a", srv.URL + "/only-b"}, urls)
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlhttp.NewSitemapService(nil)
		_, err := svc.DiscoverURLs(context.Background(), "://bad", nil)
		assert.Error(t, err)
	})
}
