package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPProber implements LivenessProber with a plain GET.
// Only the status code matters; the body is drained and discarded.
type HTTPProber struct {
	session *http.Client
}

// NewHTTPProber uses client when non-nil. Per-probe deadlines come from the
// caller's context, so the client needs no timeout of its own.
func NewHTTPProber(client *http.Client) *HTTPProber {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPProber{session: client}
}

func (p *HTTPProber) Probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("probe %s: create request: %w", url, err)
	}

	resp, err := p.session.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("probe %s: unexpected status %d", url, resp.StatusCode)
	}

	return nil
}
