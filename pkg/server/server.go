package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/data-lens/pkg/handlers/quality"
	datalensmiddleware "github.com/de-tools/data-lens/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Analyzer      handlers.Analyzer
	ReportBaseURL string
	HTTPClient    *http.Client
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the viewer API router.
func ConfigureRouter(logger zerolog.Logger, config Config) *chi.Mux {
	handler := handlers.NewHandler(
		config.Dependencies.Analyzer,
		config.Dependencies.ReportBaseURL,
		config.Dependencies.HTTPClient,
	)

	router := chi.NewRouter()
	router.Use(datalensmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/report", handler.AnalyzeFile)
		r.Get("/report/cleaned", handler.DownloadCleaned)
	})

	return router
}

type WebAPI struct {
	logger *zerolog.Logger
	server *http.Server
	config Config
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	return &WebAPI{
		logger: &logger,
		config: config,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(logger, config),
		},
	}
}

// Start runs the server until it fails or a shutdown signal arrives, then
// drains outstanding requests within the configured timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		timeout := w.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
