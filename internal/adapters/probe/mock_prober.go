package probe

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockProber answers probes from a fixed table of URLs.
// URLs listed in Up succeed (after Delay, if any); everything else fails.
// Calls records every probed URL in order.
type MockProber struct {
	Up    map[string]bool
	Delay map[string]time.Duration

	mu    sync.Mutex
	calls []string
}

func NewMockProber(up ...string) *MockProber {
	m := &MockProber{Up: make(map[string]bool, len(up)), Delay: map[string]time.Duration{}}
	for _, u := range up {
		m.Up[u] = true
	}
	return m
}

func (m *MockProber) Probe(ctx context.Context, url string) error {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if d := m.Delay[url]; d > 0 {
		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if !m.Up[url] {
		return fmt.Errorf("mock probe %s: connection refused", url)
	}
	return nil
}

func (m *MockProber) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
