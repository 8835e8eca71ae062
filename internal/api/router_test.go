package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-locator-service/internal/adapters/places"
	"travel-locator-service/internal/adapters/probe"
	"travel-locator-service/internal/api/dto"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/services"
)

func newTestRouter(t *testing.T, remoteKey string, up ...string) http.Handler {
	t.Helper()

	resolver := services.NewSuggestionResolver(
		places.NewGooglePlacesProvider(remoteKey, places.WithRateLimit(0, 0)),
		places.NewLocalCatalog(nil),
		time.Second,
		nil,
	)

	return NewRouter(Deps{
		Resolver:    resolver,
		DefaultMode: domain.ModeLocal,
		Prober:      probe.NewMockProber(up...),
		Endpoint: domain.EndpointConfig{
			Candidates: domain.EndpointCandidates{"10.0.2.2", "localhost"},
			Fallback:   "127.0.0.1",
			Port:       8080,
		},
	})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, "")

	rec := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestSuggestionsLocal(t *testing.T) {
	h := newTestRouter(t, "")

	rec := get(t, h, "/v1/suggestions?q=Sigiriya")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListSuggestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "local", res.Mode)
	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "Sigiriya Rock Fortress", res.Suggestions[0].PrimaryLabel)
	assert.Equal(t, "attraction", res.Suggestions[0].Icon)
	assert.Equal(t, "camera", res.Suggestions[0].Glyph)
}

func TestSuggestionsShortQuery(t *testing.T) {
	h := newTestRouter(t, "")

	rec := get(t, h, "/v1/suggestions?q=ga&mode=remote")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mode":"remote","suggestions":[]}`, rec.Body.String())
}

func TestSuggestionsRemoteNotConfigured(t *testing.T) {
	h := newTestRouter(t, places.KeyPlaceholder)

	rec := get(t, h, "/v1/suggestions?q=Galle&mode=remote")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"place search provider is not configured"}`, rec.Body.String())
}

func TestSuggestionsInvalidMode(t *testing.T) {
	h := newTestRouter(t, "")

	rec := get(t, h, "/v1/suggestions?q=Galle&mode=offline")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIcons(t *testing.T) {
	h := newTestRouter(t, "")

	rec := get(t, h, "/v1/icons?types=establishment,tourist_attraction")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"icon":"attraction","glyph":"camera"}`, rec.Body.String())

	rec = get(t, h, "/v1/icons")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"icon":"location","glyph":"location"}`, rec.Body.String())
}

func TestEndpointResolution(t *testing.T) {
	h := newTestRouter(t, "", "http://localhost:8080/health")

	rec := get(t, h, "/v1/endpoint")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"host":"localhost","base_url":"http://localhost:8080","fell_back":false}`, rec.Body.String())

	h = newTestRouter(t, "")
	rec = get(t, h, "/v1/endpoint")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"host":"127.0.0.1","base_url":"http://127.0.0.1:8080","fell_back":true}`, rec.Body.String())
}
