// Package soap exposes the reservation service as a document-style XML
// endpoint. Handlers only translate between envelope payloads and the
// service; all validation and storage sequencing lives behind the service
// interface.
package soap

import (
	"context"
	"net/http"
	"time"

	"github.com/avperez/hotelres/internal/logging"
	"github.com/avperez/hotelres/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type SOAPServer struct {
	address string
	handler http.Handler
	logger  logging.Logger
	timeout time.Duration
}

func NewSOAPServer(a string, l logging.Logger, rs *services.ReservationService, timeout time.Duration) (*SOAPServer, error) {

	logger := l.With("module", "soap_server")
	endpoint := NewEndpoint(l, rs)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Post("/ws", endpoint.ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return &SOAPServer{
		address: a,
		handler: r,
		logger:  logger,
		timeout: timeout,
	}, nil
}

func (s *SOAPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping SOAP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "SOAP server shutdown failed", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting SOAP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
