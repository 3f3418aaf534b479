package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/mdreader/internal/config"
	"github.com/dgallion1/mdreader/internal/metrics"
	"github.com/dgallion1/mdreader/internal/parser"
	"github.com/dgallion1/mdreader/internal/pipeline"
)

// Run wires the loader, store and HTTP server from cfg and serves until ctx
// is cancelled.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	rec := metrics.NewRecorder(nil)
	renderer := parser.NewRenderer(parser.RenderOptions{
		Emoji:     cfg.EnableEmoji,
		HardWraps: cfg.HardWraps,
	})
	loader := pipeline.NewLoader(renderer, cfg.Stylesheet, rec, log)
	store := pipeline.NewStore(cfg.DocTTL, rec)
	srv := NewServer(loader, store, rec, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return store.RunCleanup(gctx, cfg.CleanupInterval, log)
	})

	g.Go(func() error {
		log.Info("starting mdreader", "port", cfg.Port, "doc_root", cfg.DocRoot)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	// Graceful shutdown.
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
