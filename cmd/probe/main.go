// Command probe resolves the backend base URL from BACKEND_* settings and
// prints it. Falling back is not a failure: the exit code is 0 either way.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"travel-locator-service/internal/adapters/probe"
	"travel-locator-service/internal/config"
	"travel-locator-service/internal/platform/logger"
	"travel-locator-service/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("err", err))
		os.Exit(1)
	}

	// Logs go to stderr so stdout carries only the URL.
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	resolved := services.ResolveEndpoint(context.Background(), probe.NewHTTPProber(nil), cfg.Endpoint(), log)
	fmt.Println(resolved.BaseURL())
}
