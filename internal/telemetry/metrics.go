package telemetry

import (
	"net/http"
	"time"
)

// NewMetricsServer returns an HTTP server exposing h on /metrics.
func NewMetricsServer(addr string, h http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// StartMetricsServer serves h on addr until the listener fails. It blocks.
func StartMetricsServer(addr string, h http.Handler) error {
	LogInfo("Starting metrics server", "addr", addr)
	return NewMetricsServer(addr, h).ListenAndServe()
}
