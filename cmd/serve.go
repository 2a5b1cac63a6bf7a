package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrewpaige1/typedeck-api/config"
	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/handlers"
	"github.com/andrewpaige1/typedeck-api/middleware"
	"github.com/andrewpaige1/typedeck-api/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, db, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		h := handlers.NewDBHandler(store.New(db), flashcards.NewGenerator(nil), logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: newHTTPHandler(cfg, logger, h),
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// newHTTPHandler wraps the API routes in recovery, request logging and CORS.
func newHTTPHandler(cfg *config.Config, logger *zap.Logger, h *handlers.DBHandler) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(h.Routes())

	return middleware.Recover(logger)(middleware.RequestLogger(logger)(corsHandler))
}
