package services

import (
	"context"
	"log/slog"
	"strings"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/logger"
	"travel-locator-service/internal/ports"
)

// ResolveEndpoint probes candidates one at a time, in order, and returns the
// first host whose liveness probe succeeds.
//
// Candidates are never raced: a slower but reachable primary must win over a
// fast later entry. Each probe runs under its own ProbeTimeout and a failed
// probe is not retried. When every candidate fails (or ctx ends) the fallback
// host is returned with FellBack set and a warning is logged; this function
// never returns an error.
func ResolveEndpoint(
	ctx context.Context,
	prober ports.LivenessProber,
	cfg domain.EndpointConfig,
	log *slog.Logger,
) domain.ResolvedEndpoint {
	cfg = cfg.WithDefaults()
	l := logger.WithContext(ctx, log)

	for i, host := range cfg.Candidates {
		host = strings.TrimSpace(host)
		if host == "" {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		url := cfg.ProbeURL(host)
		if err := probeOnce(ctx, prober, url, cfg); err != nil {
			l.Debug("endpoint candidate unreachable",
				slog.Int("index", i),
				slog.String("url", url),
				slog.Any("err", err),
			)
			continue
		}

		l.Info("endpoint resolved", slog.String("host", host), slog.Int("index", i))
		return domain.ResolvedEndpoint{Host: host, Port: cfg.Port, Secure: cfg.Secure}
	}

	l.Warn("no endpoint candidate reachable, using fallback",
		slog.String("fallback", cfg.Fallback),
		slog.Int("candidates", len(cfg.Candidates)),
	)

	return domain.ResolvedEndpoint{
		Host:     cfg.Fallback,
		Port:     cfg.Port,
		Secure:   cfg.Secure,
		FellBack: true,
	}
}

func probeOnce(ctx context.Context, prober ports.LivenessProber, url string, cfg domain.EndpointConfig) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.ProbeTimeout)
	defer cancel()

	return prober.Probe(ctx, url)
}
