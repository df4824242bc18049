package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"parking-facility/internal/parking"
)

type Server struct {
	httpServer *http.Server
	handler    *Handler
	log        zerolog.Logger
}

func NewServer(port string, facility *parking.InstrumentedFacility, serviceName string, log zerolog.Logger) *Server {
	handler := NewHandler(facility, serviceName)

	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(log))
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(log))
	r.Use(TracingMiddleware)
	r.Use(CORSMiddleware)

	r.Get("/health", handler.HealthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/facility", func(r chi.Router) {
		r.Post("/park", handler.ParkVehicle)
		r.Post("/unpark", handler.UnparkVehicle)
		r.Get("/status", handler.GetStatus)
		r.Get("/ticket/{registration}", handler.GetTicket)
	})

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		log:        log,
	}
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("starting HTTP server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
