package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// NewRouter registers the handlers on a fresh mux.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", h.PingHandler)
	mux.HandleFunc("GET /best-move", h.BestMoveHandler)

	return mux
}

// Start serves h on port until ctx is canceled.
func Start(ctx context.Context, port string, h Handlers) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(h),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
