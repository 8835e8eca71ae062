package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProberAcceptsAny2xx(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusNoContent, http.StatusAccepted} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(code)
		}))

		err := NewHTTPProber(srv.Client()).Probe(context.Background(), srv.URL+"/health")
		assert.NoError(t, err, "status %d", code)
		srv.Close()
	}
}

func TestHTTPProberRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewHTTPProber(nil).Probe(context.Background(), srv.URL+"/health")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPProberHonorsDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := NewHTTPProber(nil).Probe(ctx, srv.URL+"/health")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestHTTPProberConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/health"
	srv.Close()

	require.Error(t, NewHTTPProber(nil).Probe(context.Background(), url))
}
