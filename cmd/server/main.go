// Command server runs the MCO activity mock API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"mcomock/internal/activity/handler"
	"mcomock/internal/activity/service"
	"mcomock/internal/platform/config"
	"mcomock/internal/platform/httpserver"
	"mcomock/internal/platform/logger"
	"mcomock/internal/platform/metrics"
	"mcomock/internal/synth"
	"mcomock/pkg/platform/httputil"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := config.FromEnv()

	bounds := synth.DefaultBounds()
	if cfg.BoundsFile != "" {
		var err error
		bounds, err = synth.LoadBounds(cfg.BoundsFile)
		if err != nil {
			return err
		}
		log.Info("synthesis bounds loaded", "file", cfg.BoundsFile)
	}

	engine := synth.NewEngine(bounds, cfg.Seed, cfg.Seeded)
	m := metrics.New(prometheus.DefaultRegisterer)

	svc, err := service.New(engine, log, m)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	handler.New(log, svc, m).Register(r)

	srv := httpserver.New(cfg.Addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr, "seeded", cfg.Seeded)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
