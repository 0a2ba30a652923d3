package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/promo_cards/internal/config"
)

type Service interface {
	CardsService
	LogosService
}

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, log *slog.Logger, service Service, hub ProgressSubscriber) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, service, hub),
		},
	}
}

func NewRouter(log *slog.Logger, service Service, hub ProgressSubscriber) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	jobs := NewJobsHandler(log, service)
	logos := NewLogosHandler(log, service)
	progress := NewProgressHandler(log, hub)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/spreadsheets", jobs.UploadSpreadsheet)

		r.Post("/jobs", jobs.StartJob)
		r.Get("/jobs/{job_id}", jobs.GetJob)
		r.Get("/jobs/{job_id}/archive", jobs.DownloadArchive)

		r.Post("/journal", jobs.ComposeJournal)

		r.Get("/logos", logos.ListLogos)
		r.Post("/logos", logos.UploadLogo)
		r.Head("/logos/{name}", logos.LogoExists)
		r.Delete("/logos/{name}", logos.DeleteLogo)

		r.Get("/ws/progress", progress.Serve)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
