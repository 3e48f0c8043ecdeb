package server

import (
	"context"
	"net/http"
	"time"

	"github.com/robfig/cron"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server wraps an *http.Server plus the cron job that keeps the cached
// recommendation fresh.
type Server struct {
	httpServer *http.Server
	scheduler  *cron.Cron
}

// Run starts the refresh scheduler and serves until the listener fails.
func (s *Server) Run(addr string, handler http.Handler, service *Service, schedule string) error {
	s.scheduler = cron.New()
	err := s.scheduler.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := service.Refresh(ctx); err != nil {
			log.Error().Err(err).Msg("Scheduled refresh failed")
		}
	})
	if err != nil {
		return err
	}
	s.scheduler.Start()

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
