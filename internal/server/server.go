package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlorentedev/revisor/internal/adapter"
	"github.com/mlorentedev/revisor/internal/handler"
	"github.com/mlorentedev/revisor/internal/middleware"
)

// SetupMux wires handlers with the full middleware chain.
func SetupMux(adapters map[string]adapter.LLMAdapter, models []adapter.ModelInfo, opts handler.Options, apiKey, version string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(adapters, version))
	mux.HandleFunc("/api/models", handler.Models(models))
	mux.HandleFunc("/api/audit", handler.Audit(adapters, opts))
	mux.Handle("/metrics", promhttp.Handler())

	rl := middleware.NewRateLimiter(10, time.Minute)
	return middleware.Chain(mux, rl, apiKey)
}
