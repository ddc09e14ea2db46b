package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"prai/internal/config"
	"prai/internal/observability"
	"prai/internal/store"
	"prai/internal/worker"
)

type Server struct {
	cfg       *config.Config
	logger    *observability.Logger
	http      *http.Server
	store     store.Store
	processor *worker.Processor
	queue     worker.Queue
}

func NewServer(cfg *config.Config, logger *observability.Logger) (*Server, error) {

	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	mux, err := s.build()
	if err != nil {
		return nil, err
	}

	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // manual triggers run a full review inline
	}

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {

	s.processor.Start(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.http.Shutdown(shutdownCtx)
		_ = s.store.Close()
	}()

	s.logger.Info("starting server",
		"port", s.cfg.Port,
		"env", s.cfg.Env,
	)

	if err := s.http.ListenAndServe(); err != nil &&
		err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
