package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/brightlane-studio/portfolio-backend/internal/api/http/routes"
	"github.com/brightlane-studio/portfolio-backend/internal/bootstrap"
	"github.com/brightlane-studio/portfolio-backend/internal/contact"
	cronjob "github.com/brightlane-studio/portfolio-backend/internal/imagesync/cron"
	"github.com/brightlane-studio/portfolio-backend/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API, the optional metrics endpoint (METRICS_ADDR) and the
optional scheduled image reconciliation (SYNC_SCHEDULE).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	bootstrap.SetGinMode(cfg.App.Environment)

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	var limiter *contact.IPRateLimiter
	if cfg.Contact.RatePerMin > 0 {
		limiter = contact.NewIPRateLimiter(cfg.Contact.RatePerMin)
	}
	relay := contact.NewRelay(contact.NewEmailClient(cfg.Contact.BaseURL, cfg.Contact.APIKey), cfg.Contact.From, cfg.Contact.To)

	deps := bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Routes: routes.Deps{
			Projects:   a.projects,
			Reconciler: a.reconciler,
			Contact:    contact.NewHandler(relay, limiter),
		},
	}
	deps.TrustedProxies = cfg.Server.TrustedProxies
	if a.pool != nil {
		deps.DB = a.pool
	}
	if a.redis != nil {
		deps.Redis = bootstrap.RedisPinger{Client: a.redis}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           bootstrap.BuildRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var metricsSrv *metrics.Server
	if cfg.App.MetricsAddr != "" {
		metricsSrv = metrics.NewServer(cfg.App.MetricsAddr)
	}

	var scheduler *cronjob.Scheduler
	if cfg.Drive.Schedule != "" {
		scheduler, err = cronjob.NewScheduler(cfg.Drive.Schedule, a.reconciler, cfg.Drive.APIKey, cfg.Drive.FolderID)
		if err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.App.Environment).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if metricsSrv != nil {
		g.Go(metricsSrv.Start)
	}

	if scheduler != nil {
		scheduler.Start()
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if scheduler != nil {
			scheduler.Stop(shutdownCtx)
		}
		if metricsSrv != nil {
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("metrics server shutdown")
			}
		}
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
