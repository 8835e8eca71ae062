package places

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	// Credential value shipped in example configs.
	KeyPlaceholder = "YOUR_GOOGLE_PLACES_API_KEY"

	// Fixed request filters: establishments and geocodable places in Sri Lanka.
	typeFilter   = "establishment|geocode"
	regionFilter = "country:lk"
)

// GooglePlacesProvider implements SuggestionProvider using the Places
// Autocomplete API.
//
// It coordinates:
//   - Credential checks (empty or placeholder keys are rejected per call)
//   - Outbound throttling so bursts of keystrokes cannot flood the provider
//   - External API calls with retry/backoff
//   - Normalization of predictions into PlaceSuggestion values
//
// The provider is safe for concurrent use.
type GooglePlacesProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	limiter *rate.Limiter
}

type GoogleOption func(*GooglePlacesProvider)

// WithBaseURL points the provider at another host (tests, proxies).
func WithBaseURL(u string) GoogleOption {
	return func(g *GooglePlacesProvider) { g.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(c *http.Client) GoogleOption {
	return func(g *GooglePlacesProvider) { g.session = c }
}

// WithRateLimit caps outbound requests per second. Zero or negative disables it.
func WithRateLimit(perSecond float64, burst int) GoogleOption {
	return func(g *GooglePlacesProvider) {
		if perSecond <= 0 {
			g.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewGooglePlacesProvider never fails on a bad key: misconfiguration is
// reported by Suggest so callers see it on every search instead of once at
// startup.
func NewGooglePlacesProvider(apiKey string, opts ...GoogleOption) *GooglePlacesProvider {
	g := &GooglePlacesProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: DefaultBaseURL,
		limiter: rate.NewLimiter(rate.Limit(10), 5),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GooglePlacesProvider) Name() string { return "google_places" }

func (g *GooglePlacesProvider) configured() bool {
	return g.apiKey != "" && g.apiKey != KeyPlaceholder
}
