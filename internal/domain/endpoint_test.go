package domain

import (
	"testing"
	"time"
)

func TestEndpointConfigWithDefaults(t *testing.T) {
	cfg := EndpointConfig{Candidates: EndpointCandidates{"10.0.2.2"}}.WithDefaults()

	if cfg.Port != DefaultBackendPort {
		t.Errorf("port = %d, want %d", cfg.Port, DefaultBackendPort)
	}
	if cfg.ProbePath != DefaultProbePath {
		t.Errorf("probe path = %q, want %q", cfg.ProbePath, DefaultProbePath)
	}
	if cfg.ProbeTimeout != 2*time.Second {
		t.Errorf("probe timeout = %v, want 2s", cfg.ProbeTimeout)
	}
}

func TestEndpointConfigProbeURL(t *testing.T) {
	cfg := EndpointConfig{Port: 8080, ProbePath: "/health"}
	if got := cfg.ProbeURL("192.168.1.5"); got != "http://192.168.1.5:8080/health" {
		t.Fatalf("probe url = %q", got)
	}

	cfg.Secure = true
	if got := cfg.ProbeURL("api.example.com"); got != "https://api.example.com:8080/health" {
		t.Fatalf("secure probe url = %q", got)
	}
}

func TestResolvedEndpointBaseURL(t *testing.T) {
	r := ResolvedEndpoint{Host: "10.0.2.2", Port: 8080}
	if got := r.BaseURL(); got != "http://10.0.2.2:8080" {
		t.Fatalf("base url = %q", got)
	}

	r = ResolvedEndpoint{Host: "::1", Port: 443, Secure: true}
	if got := r.BaseURL(); got != "https://[::1]:443" {
		t.Fatalf("ipv6 base url = %q", got)
	}
}

func TestQueryTooShort(t *testing.T) {
	cases := map[string]bool{
		"":         true,
		"ga":       true,
		"  ga  ":   true,
		"gal":      false,
		"Ūva":      false,
		"Sigiriya": false,
	}
	for q, want := range cases {
		if got := QueryTooShort(q); got != want {
			t.Errorf("QueryTooShort(%q) = %v, want %v", q, got, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" REMOTE "); err != nil || m != ModeRemote {
		t.Fatalf("ParseMode remote = %q, %v", m, err)
	}
	if m, err := ParseMode("local"); err != nil || m != ModeLocal {
		t.Fatalf("ParseMode local = %q, %v", m, err)
	}
	if _, err := ParseMode("offline"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
