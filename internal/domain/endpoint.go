package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Ordered backend hosts (bare addresses, no scheme), most likely first.
type EndpointCandidates []string

// Inputs for a single endpoint resolution pass.
// Passed by value at call time; resolvers hold no candidate state of their own.
type EndpointConfig struct {
	Candidates   EndpointCandidates
	Fallback     string
	Port         int
	Secure       bool
	ProbePath    string
	ProbeTimeout time.Duration
}

const (
	DefaultBackendPort  = 8080
	DefaultProbePath    = "health"
	DefaultProbeTimeout = 2 * time.Second
)

// WithDefaults fills zero-valued port, probe path, and timeout.
func (c EndpointConfig) WithDefaults() EndpointConfig {
	if c.Port == 0 {
		c.Port = DefaultBackendPort
	}
	if strings.TrimSpace(c.ProbePath) == "" {
		c.ProbePath = DefaultProbePath
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = DefaultProbeTimeout
	}
	return c
}

// ProbeURL returns the liveness URL for host under this config.
func (c EndpointConfig) ProbeURL(host string) string {
	return fmt.Sprintf("%s/%s", baseURL(host, c.Port, c.Secure), strings.TrimLeft(c.ProbePath, "/"))
}

// Outcome of an endpoint resolution.
// FellBack is set when no candidate answered and Host is the configured fallback.
type ResolvedEndpoint struct {
	Host     string
	Port     int
	Secure   bool
	FellBack bool
}

// BaseURL combines scheme, host, and port, e.g. "http://10.0.2.2:8080".
func (r ResolvedEndpoint) BaseURL() string {
	return baseURL(r.Host, r.Port, r.Secure)
}

func baseURL(host string, port int, secure bool) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(port))
}
