package api

import (
	"context"
	"net/http"

	"talentdesk/internal/config"
	"talentdesk/internal/extractor"
	"talentdesk/internal/repository"
	"talentdesk/internal/telemetry"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("talentdesk/api")

type Server struct {
	jobs       *repository.Jobs
	candidates *repository.Candidates
	extractor  *extractor.Extractor
	logger     *zap.Logger
	mux        *http.ServeMux
}

func New(jobs *repository.Jobs, candidates *repository.Candidates, ex *extractor.Extractor, logger *zap.Logger) *Server {
	s := &Server{
		jobs:       jobs,
		candidates: candidates,
		extractor:  ex,
		logger:     logger,
		mux:        http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("GET /jobs", s.handleListJobs)
	s.mux.HandleFunc("POST /jobs", s.handleCreateJob)
	s.mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	s.mux.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
	s.mux.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)

	s.mux.HandleFunc("GET /candidates", s.handleListCandidates)
	s.mux.HandleFunc("POST /candidates", s.handleCreateCandidate)
	s.mux.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	s.mux.HandleFunc("PUT /candidates/{id}", s.handleUpdateCandidate)
	s.mux.HandleFunc("DELETE /candidates/{id}", s.handleDeleteCandidate)

	s.mux.HandleFunc("POST /extract", s.handleExtract)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Register puts the HTTP server on the fx lifecycle.
func Register(lc fx.Lifecycle, cfg *config.Config, server *Server, logger *zap.Logger) {
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Handler(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	})
}
