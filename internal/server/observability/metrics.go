// Package observability holds the Prometheus collectors shared by both
// protocol adapters and an optional standalone /metrics listener.
package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/avperez/hotelres/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RPCRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelres", Name: "rpc_requests_total", Help: "RPC requests by surface."},
		[]string{"surface", "operation", "status"},
	)
	RPCLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelres", Name: "rpc_request_duration_seconds",
			Help:    "RPC request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"surface", "operation"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(RPCRequests, RPCLatency)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveRPC records one finished call. surface is "grpc" or "soap"; status
// is the transport-level outcome label.
func ObserveRPC(surface, operation, status string, dur time.Duration) {
	RPCRequests.WithLabelValues(surface, operation, status).Inc()
	RPCLatency.WithLabelValues(surface, operation).Observe(dur.Seconds())
}

// Serve starts the metrics listener on addr. An empty addr disables it.
func Serve(ctx context.Context, addr string, reg *prometheus.Registry, logger logging.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "metrics server shutdown failed", "error", err.Error())
		}
	}()

	go func() {
		logger.Info(ctx, "metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "metrics server failed", "error", err.Error())
		}
	}()
}
