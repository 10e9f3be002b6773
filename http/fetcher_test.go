package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skaranam/namartha/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Write([]byte("<html><body>श्रीमाता</body></html>"))
		}))
		defer srv.Close()

		f := http.NewFetcher(http.WithRateLimit(1000))
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "श्रीमाता")
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		f := http.NewFetcher(http.WithRateLimit(1000))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("canceled context aborts the rate-limit wait", func(t *testing.T) {
		t.Parallel()

		f := http.NewFetcher(http.WithRateLimit(0.001))
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		// First request consumes the burst token; the second must wait far
		// longer than the context allows.
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
		defer srv.Close()

		_, err := f.Fetch(ctx, srv.URL)
		if err == nil {
			_, err = f.Fetch(ctx, srv.URL)
		}
		assert.Error(t, err)
	})
}
